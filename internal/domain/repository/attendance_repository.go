package repository

import (
	"context"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

type AttendanceFilter struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

type AttendanceRepository interface {
	Create(ctx context.Context, a *entity.Attendance) error
	GetByID(ctx context.Context, id uuid.UUID) (entity.Attendance, error)
	// GetByUserAndDate expects date already normalized to start of day.
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (entity.Attendance, error)
	Update(ctx context.Context, a *entity.Attendance) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]entity.Attendance, error)
}
