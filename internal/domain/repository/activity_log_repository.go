package repository

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

// ActivityLogRepository is append-only: entries are never updated or removed.
type ActivityLogRepository interface {
	Append(ctx context.Context, log *entity.ActivityLog) error
	GetByID(ctx context.Context, id uuid.UUID) (entity.ActivityLog, error)
	// List returns entries most recent first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]entity.ActivityLog, error)
	Count(ctx context.Context) (int64, error)
}
