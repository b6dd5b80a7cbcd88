package usecase

import (
	"context"
	"errors"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/infra/security"
	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Auth struct {
	users  repository.UserRepository
	hasher *security.Hasher
	tokens *security.TokenManager
	log    *logrus.Logger
}

var _ service.AuthService = (*Auth)(nil)

func NewAuth(users repository.UserRepository, hasher *security.Hasher, tokens *security.TokenManager, log *logrus.Logger) *Auth {
	return &Auth{users: users, hasher: hasher, tokens: tokens, log: log}
}

func (u *Auth) Login(ctx context.Context, email, password string) (entity.User, string, error) {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.User{}, "", ErrInvalidCredentials
		}
		u.log.WithError(err).Error("login lookup failed")
		return entity.User{}, "", err
	}
	if !u.hasher.Verify(password, user.Password) {
		return entity.User{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		u.log.WithError(err).Error("token issue failed")
		return entity.User{}, "", err
	}
	return user, token, nil
}
