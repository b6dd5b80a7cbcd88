package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Activity log actions. DELETE_* entries carry a full row snapshot in
// Payload and are the only recoverable ones.
const (
	ActionCreateCertificate  = "CREATE_CERTIFICATE"
	ActionUpdateCertificate  = "UPDATE_CERTIFICATE"
	ActionDeleteCertificate  = "DELETE_CERTIFICATE"
	ActionCreateUser         = "CREATE_USER"
	ActionUpdateUser         = "UPDATE_USER"
	ActionDeleteUser         = "DELETE_USER"
	ActionCreateTanahGarapan = "CREATE_TANAH_GARAPAN"
	ActionUpdateTanahGarapan = "UPDATE_TANAH_GARAPAN"
	ActionDeleteTanahGarapan = "DELETE_TANAH_GARAPAN"
	ActionCheckIn            = "CHECK_IN"
	ActionCheckOut           = "CHECK_OUT"
	ActionUpdateAttendance   = "UPDATE_ATTENDANCE"
	ActionDeleteAttendance   = "DELETE_ATTENDANCE"
	ActionRestoreData        = "RESTORE_DATA"
)

// ActivityLog rows are append-only; nothing in the system updates or deletes
// them. Actor is stored as plain text so the entry survives actor deletion.
type ActivityLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	User      string         `gorm:"not null" json:"user"`
	Action    string         `gorm:"not null;index" json:"action"`
	Details   string         `gorm:"not null" json:"details"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// Recoverable reports whether the entry's action may carry a restorable
// snapshot. The payload itself must still be present for a restore to run.
func (l ActivityLog) Recoverable() bool {
	switch l.Action {
	case ActionDeleteCertificate, ActionDeleteUser, ActionDeleteTanahGarapan, ActionDeleteAttendance:
		return true
	}
	return false
}
