package repository

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

type TanahGarapanRepository interface {
	Create(ctx context.Context, e *entity.TanahGarapanEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (entity.TanahGarapanEntry, error)
	Update(ctx context.Context, e *entity.TanahGarapanEntry) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListCursor(ctx context.Context, limit int, cursor string) ([]entity.TanahGarapanEntry, error)
	ListByLetakTanah(ctx context.Context, letakTanah string) ([]entity.TanahGarapanEntry, error)
}
