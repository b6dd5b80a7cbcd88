package entity

import (
	"time"

	"github.com/google/uuid"
)

// TanahGarapanEntry is one row of the secondary land-occupancy register.
// Entries are grouped by LetakTanah for the printed group views; the grouping
// is a query concern, not a constraint.
type TanahGarapanEntry struct {
	ID                          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LetakTanah                  string    `gorm:"not null;index" json:"letakTanah"`
	NamaPemegangHak             string    `gorm:"not null" json:"namaPemegangHak"`
	LetterC                     string    `gorm:"not null" json:"letterC"`
	NomorSuratKeteranganGarapan string    `gorm:"not null" json:"nomorSuratKeteranganGarapan"`
	Luas                        int       `gorm:"not null" json:"luas"`
	Keterangan                  string    `json:"keterangan,omitempty"`
	CreatedAt                   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt                   time.Time `gorm:"not null" json:"updatedAt"`
}

func (TanahGarapanEntry) TableName() string {
	return "tanah_garapan_entries"
}
