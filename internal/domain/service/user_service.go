package service

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

// UserInput carries a plaintext password only transiently; it is hashed
// before anything is persisted. On update an empty Password keeps the
// current hash.
type UserInput struct {
	Name     string
	Email    string
	Role     string
	Password string
}

type UserService interface {
	Create(ctx context.Context, in UserInput, actor string) (entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	Update(ctx context.Context, id uuid.UUID, in UserInput, actor string) (entity.User, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
	List(ctx context.Context, limit int, cursor string) ([]entity.User, string, error)
}
