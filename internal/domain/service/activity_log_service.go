package service

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

// RestoreResult is returned to the UI verbatim; Message never carries raw
// database errors.
type RestoreResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ActivityLogService interface {
	List(ctx context.Context, limit int) ([]entity.ActivityLog, error)
	Restore(ctx context.Context, logID uuid.UUID, actor string) (RestoreResult, error)
}
