package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/infra/security"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUC(t *testing.T) (*Auth, *MockUserRepository, *security.TokenManager) {
	t.Helper()
	users := new(MockUserRepository)
	tokens := security.NewTokenManager("test-secret", time.Hour)
	uc := NewAuth(users, security.NewHasher(bcrypt.MinCost), tokens, testLogger())
	return uc, users, tokens
}

func TestAuth_Login_ReturnsSignedToken(t *testing.T) {
	uc, users, tokens := newAuthUC(t)

	hash, err := security.NewHasher(bcrypt.MinCost).Hash("secret-password")
	assert.NoError(t, err)
	stored := entity.User{ID: uuid.New(), Name: "Budi", Email: "budi@example.com", Role: entity.RoleAdmin, Password: hash}
	users.On("GetByEmail", mock.Anything, "budi@example.com").Return(stored, nil)

	user, token, err := uc.Login(context.Background(), "budi@example.com", "secret-password")

	assert.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)

	claims, err := tokens.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "Budi", claims.Name)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, stored.ID.String(), claims.Subject)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	uc, users, _ := newAuthUC(t)

	hash, err := security.NewHasher(bcrypt.MinCost).Hash("secret-password")
	assert.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "budi@example.com").
		Return(entity.User{ID: uuid.New(), Email: "budi@example.com", Password: hash}, nil)

	_, _, err = uc.Login(context.Background(), "budi@example.com", "wrong-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_Login_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	uc, users, _ := newAuthUC(t)

	users.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(entity.User{}, repository.ErrNotFound)

	_, _, err := uc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
