package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Certificate struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Kode               string         `gorm:"not null" json:"kode"`
	NamaPemegang       pq.StringArray `gorm:"type:text[];not null" json:"nama_pemegang"`
	SuratHak           string         `gorm:"not null" json:"surat_hak"`
	NoSertifikat       string         `gorm:"not null;uniqueIndex:uq_certificates_no_sertifikat" json:"no_sertifikat"`
	LokasiTanah        string         `gorm:"not null" json:"lokasi_tanah"`
	LuasM2             int            `gorm:"not null" json:"luas_m2"`
	TglTerbit          time.Time      `gorm:"not null" json:"tgl_terbit"`
	SuratUkur          string         `gorm:"not null" json:"surat_ukur"`
	NIB                string         `gorm:"column:nib;not null;uniqueIndex:uq_certificates_nib" json:"nib"`
	PendaftaranPertama time.Time      `gorm:"not null" json:"pendaftaran_pertama"`
	CreatedAt          time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"not null" json:"updatedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}
