package security

import (
	"testing"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	user := entity.User{ID: uuid.New(), Name: "Budi Santoso", Role: entity.RoleManager}

	token, err := m.Issue(user)
	assert.NoError(t, err)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso", claims.Name)
	assert.Equal(t, entity.RoleManager, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	parser := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(entity.User{ID: uuid.New(), Name: "Budi", Role: entity.RoleUser})
	assert.NoError(t, err)

	_, err = parser.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	m.ttl = -time.Minute

	token, err := m.Issue(entity.User{ID: uuid.New(), Name: "Budi", Role: entity.RoleUser})
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
