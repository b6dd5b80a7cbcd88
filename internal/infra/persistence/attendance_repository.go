package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/google/uuid"
)

type AttendanceRepository struct {
	db *DB
}

var _ repository.AttendanceRepository = (*AttendanceRepository)(nil)

func NewAttendanceRepository(db *DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func attendanceConstraints(a *entity.Attendance) map[string]uniqueField {
	return map[string]uniqueField{
		"uq_attendances_user_date": {
			field: "userId, date",
			value: fmt.Sprintf("%s, %s", a.UserID, a.Date.Format("2006-01-02")),
		},
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, a *entity.Attendance) error {
	if err := r.db.Write(ctx).Create(a).Error; err != nil {
		return translateUnique(err, attendanceConstraints(a))
	}
	return nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Attendance, error) {
	var a entity.Attendance
	if err := r.db.Read(ctx).Preload("User").First(&a, "id = ?", id).Error; err != nil {
		return entity.Attendance{}, translateNotFound(err)
	}
	return a, nil
}

func (r *AttendanceRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (entity.Attendance, error) {
	var a entity.Attendance
	err := r.db.Read(ctx).Preload("User").
		First(&a, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		return entity.Attendance{}, translateNotFound(err)
	}
	return a, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, a *entity.Attendance) error {
	result := r.db.Write(ctx).Model(&entity.Attendance{}).Where("id = ?", a.ID).Updates(map[string]any{
		"check_in":  a.CheckIn,
		"check_out": a.CheckOut,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AttendanceRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.Write(ctx).Delete(&entity.Attendance{}, "id = ?", id).Error
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Attendance, error) {
	if limit <= 0 {
		limit = 30
	}
	var records []entity.Attendance
	err := r.db.Read(ctx).Preload("User").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) List(ctx context.Context, filter repository.AttendanceFilter) ([]entity.Attendance, error) {
	query := r.db.Read(ctx).Preload("User").Order("date DESC")
	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
		query = query.Where("date >= ? AND date <= ?", filter.StartDate, filter.EndDate)
	}
	var records []entity.Attendance
	err := query.Find(&records).Error
	return records, err
}
