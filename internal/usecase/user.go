package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/infra/pagination"
	"github.com/Blawness/pkp-studio/internal/infra/security"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type User struct {
	store  repository.Store
	users  repository.UserRepository
	hasher *security.Hasher
	rec    *recorder
	log    *logrus.Logger
}

var _ service.UserService = (*User)(nil)

func NewUser(store repository.Store, users repository.UserRepository, hasher *security.Hasher, logs repository.ActivityLogRepository, outbox OutboxAppender, log *logrus.Logger) *User {
	return &User{store: store, users: users, hasher: hasher, rec: newRecorder(logs, outbox), log: log}
}

func (u *User) Create(ctx context.Context, in service.UserInput, actor string) (entity.User, error) {
	if !entity.ValidRole(in.Role) {
		return entity.User{}, repository.Validation(fmt.Sprintf("invalid role '%s'", in.Role))
	}
	if in.Password == "" {
		return entity.User{}, repository.Validation("password is required for new users")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		u.log.WithError(err).Error("hash password failed")
		return entity.User{}, err
	}

	var user entity.User
	err = u.store.WithTx(ctx, func(txCtx context.Context) error {
		if exists, err := u.users.ExistsEmail(txCtx, in.Email, uuid.Nil); err != nil {
			return err
		} else if exists {
			return repository.Conflict("email", in.Email)
		}

		user = entity.User{
			Name:     in.Name,
			Email:    in.Email,
			Role:     in.Role,
			Password: hash,
		}
		if err := u.users.Create(txCtx, &user); err != nil {
			return err
		}

		details := fmt.Sprintf("Created new user '%s' with role '%s'.", user.Name, user.Role)
		return u.rec.record(txCtx, actor, entity.ActionCreateUser, details, nil, "user", user.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("create user failed")
		return entity.User{}, err
	}
	return user, nil
}

func (u *User) GetByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		u.log.WithError(err).Error("get user failed")
		return entity.User{}, err
	}
	return user, nil
}

func (u *User) Update(ctx context.Context, id uuid.UUID, in service.UserInput, actor string) (entity.User, error) {
	if !entity.ValidRole(in.Role) {
		return entity.User{}, repository.Validation(fmt.Sprintf("invalid role '%s'", in.Role))
	}

	var user entity.User
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		current, err := u.users.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if exists, err := u.users.ExistsEmail(txCtx, in.Email, id); err != nil {
			return err
		} else if exists {
			return repository.Conflict("email", in.Email)
		}

		// An empty password keeps the existing hash.
		hash := current.Password
		if in.Password != "" {
			hash, err = u.hasher.Hash(in.Password)
			if err != nil {
				return err
			}
		}

		user = entity.User{
			ID:       id,
			Name:     in.Name,
			Email:    in.Email,
			Role:     in.Role,
			Password: hash,
		}
		if err := u.users.Update(txCtx, &user); err != nil {
			return err
		}
		updated, err := u.users.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		user = updated

		details := fmt.Sprintf("Updated user '%s'.", user.Name)
		return u.rec.record(txCtx, actor, entity.ActionUpdateUser, details, nil, "user", user.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("update user failed")
		return entity.User{}, err
	}
	return user, nil
}

// Delete snapshots the whole row, password hash included; the hash never
// reaches a response and restoration discards it.
func (u *User) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		user, err := u.users.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}

		payload, err := encodeUserSnapshot(user)
		if err != nil {
			return err
		}
		if err := u.users.DeleteByID(txCtx, id); err != nil {
			return err
		}

		details := fmt.Sprintf("Deleted user '%s'.", user.Name)
		return u.rec.record(txCtx, actor, entity.ActionDeleteUser, details, payload, "user", user.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("delete user failed")
		return err
	}
	return nil
}

func (u *User) List(ctx context.Context, limit int, cursor string) ([]entity.User, string, error) {
	users, err := u.users.ListCursor(ctx, limit, cursor)
	if err != nil {
		u.log.WithError(err).Error("list users failed")
		return nil, "", err
	}
	nextCursor := ""
	if len(users) > 0 && (limit <= 0 || len(users) == limit) {
		last := users[len(users)-1]
		nextCursor = pagination.Encode(last.CreatedAt, last.ID)
	}
	return users, nextCursor, nil
}
