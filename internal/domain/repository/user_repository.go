package repository

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	ExistsEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, user *entity.User) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListCursor(ctx context.Context, limit int, cursor string) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
}
