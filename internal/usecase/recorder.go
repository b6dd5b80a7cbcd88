package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OutboxAppender enqueues activity events for the outbox worker.
type OutboxAppender interface {
	Append(ctx context.Context, event *entity.OutboxEvent) error
}

var eventTypes = map[string]string{
	entity.ActionCreateCertificate:  "certificate.created",
	entity.ActionUpdateCertificate:  "certificate.updated",
	entity.ActionDeleteCertificate:  "certificate.deleted",
	entity.ActionCreateUser:         "user.created",
	entity.ActionUpdateUser:         "user.updated",
	entity.ActionDeleteUser:         "user.deleted",
	entity.ActionCreateTanahGarapan: "tanah_garapan.created",
	entity.ActionUpdateTanahGarapan: "tanah_garapan.updated",
	entity.ActionDeleteTanahGarapan: "tanah_garapan.deleted",
	entity.ActionCheckIn:            "attendance.checked_in",
	entity.ActionCheckOut:           "attendance.checked_out",
	entity.ActionUpdateAttendance:   "attendance.updated",
	entity.ActionDeleteAttendance:   "attendance.deleted",
	entity.ActionRestoreData:        "data.restored",
}

type activityEvent struct {
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

// recorder writes the activity-log entry and the matching outbox event for a
// completed mutation. It must run inside the mutation's transaction so a
// failed append rolls the business write back.
type recorder struct {
	logs   repository.ActivityLogRepository
	outbox OutboxAppender
}

func newRecorder(logs repository.ActivityLogRepository, outbox OutboxAppender) *recorder {
	return &recorder{logs: logs, outbox: outbox}
}

func (r *recorder) record(ctx context.Context, actor, action, details string, payload []byte, aggregateType string, aggregateID uuid.UUID) error {
	now := time.Now().UTC()
	logEntry := &entity.ActivityLog{
		User:      actor,
		Action:    action,
		Details:   details,
		Timestamp: now,
	}
	if len(payload) > 0 {
		logEntry.Payload = datatypes.JSON(payload)
	}
	if err := r.logs.Append(ctx, logEntry); err != nil {
		return err
	}

	data, err := json.Marshal(activityEvent{
		Action:    action,
		Details:   details,
		User:      actor,
		Timestamp: now,
	})
	if err != nil {
		return err
	}
	return r.outbox.Append(ctx, &entity.OutboxEvent{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventTypes[action],
		Payload:       datatypes.JSON(data),
		CreatedAt:     now,
	})
}
