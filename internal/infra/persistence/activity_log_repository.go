package persistence

import (
	"context"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/google/uuid"
)

type ActivityLogRepository struct {
	db *DB
}

var _ repository.ActivityLogRepository = (*ActivityLogRepository)(nil)

func NewActivityLogRepository(db *DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	return r.db.Write(ctx).Create(log).Error
}

func (r *ActivityLogRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.ActivityLog, error) {
	var log entity.ActivityLog
	if err := r.db.Read(ctx).First(&log, "id = ?", id).Error; err != nil {
		return entity.ActivityLog{}, translateNotFound(err)
	}
	return log, nil
}

func (r *ActivityLogRepository) List(ctx context.Context, limit int) ([]entity.ActivityLog, error) {
	query := r.db.Read(ctx).
		Order("timestamp DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var logs []entity.ActivityLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *ActivityLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Read(ctx).Model(&entity.ActivityLog{}).Count(&count).Error
	return count, err
}
