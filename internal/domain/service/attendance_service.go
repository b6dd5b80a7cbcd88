package service

import (
	"context"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/google/uuid"
)

// AttendanceUpdate distinguishes "leave CheckOut alone" (nil) from
// "clear it" via ClearCheckOut.
type AttendanceUpdate struct {
	CheckIn       *time.Time
	CheckOut      *time.Time
	ClearCheckOut bool
}

type AttendanceService interface {
	CheckIn(ctx context.Context, userID uuid.UUID, actor string) (entity.Attendance, error)
	CheckOut(ctx context.Context, attendanceID uuid.UUID, actor string) (entity.Attendance, error)
	TodayForUser(ctx context.Context, userID uuid.UUID) (entity.Attendance, error)
	HistoryForUser(ctx context.Context, userID uuid.UUID) ([]entity.Attendance, error)
	List(ctx context.Context, filter repository.AttendanceFilter) ([]entity.Attendance, error)
	Update(ctx context.Context, id uuid.UUID, upd AttendanceUpdate, actor string) (entity.Attendance, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
}
