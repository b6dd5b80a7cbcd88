package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attendance keeps at most one record per user per calendar day. Date is
// normalized to start of day; the (user_id, date) pair is unique.
type Attendance struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_user_date" json:"userId"`
	Date      time.Time  `gorm:"not null;uniqueIndex:uq_attendances_user_date" json:"date"`
	CheckIn   time.Time  `gorm:"not null" json:"checkIn"`
	CheckOut  *time.Time `json:"checkOut"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null" json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
