package usecase

import (
	"encoding/json"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Snapshot codecs for the DELETE_* payloads. Each recoverable action has one
// encode/decode pair; decoding strips identity and timestamp fields so the
// restored row always gets a fresh id and fresh timestamps.

func encodeCertificateSnapshot(cert entity.Certificate) ([]byte, error) {
	return json.Marshal(cert)
}

type certificateSnapshot struct {
	Kode               string          `json:"kode"`
	NamaPemegang       json.RawMessage `json:"nama_pemegang"`
	SuratHak           string          `json:"surat_hak"`
	NoSertifikat       string          `json:"no_sertifikat"`
	LokasiTanah        string          `json:"lokasi_tanah"`
	LuasM2             int             `json:"luas_m2"`
	TglTerbit          time.Time       `json:"tgl_terbit"`
	SuratUkur          string          `json:"surat_ukur"`
	NIB                string          `json:"nib"`
	PendaftaranPertama time.Time       `json:"pendaftaran_pertama"`
}

func certificateFromSnapshot(payload []byte) (entity.Certificate, error) {
	var snap certificateSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return entity.Certificate{}, err
	}
	// A snapshot written by an older build may not hold a list here; fall
	// back to an empty holder list rather than refusing the restore.
	var holders []string
	if len(snap.NamaPemegang) > 0 {
		if err := json.Unmarshal(snap.NamaPemegang, &holders); err != nil {
			holders = nil
		}
	}
	if holders == nil {
		holders = []string{}
	}
	return entity.Certificate{
		Kode:               snap.Kode,
		NamaPemegang:       pq.StringArray(holders),
		SuratHak:           snap.SuratHak,
		NoSertifikat:       snap.NoSertifikat,
		LokasiTanah:        snap.LokasiTanah,
		LuasM2:             snap.LuasM2,
		TglTerbit:          snap.TglTerbit,
		SuratUkur:          snap.SuratUkur,
		NIB:                snap.NIB,
		PendaftaranPertama: snap.PendaftaranPertama,
	}, nil
}

// userSnapshot carries the password hash the entity's json tags hide. The
// hash is kept so the record is complete, but restoration discards it and
// issues a fresh temporary password.
type userSnapshot struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func encodeUserSnapshot(user entity.User) ([]byte, error) {
	return json.Marshal(userSnapshot{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}

func userFromSnapshot(payload []byte) (entity.User, error) {
	var snap userSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return entity.User{}, err
	}
	return entity.User{
		Name:  snap.Name,
		Email: snap.Email,
		Role:  snap.Role,
	}, nil
}

func encodeTanahGarapanSnapshot(e entity.TanahGarapanEntry) ([]byte, error) {
	return json.Marshal(e)
}

type tanahGarapanSnapshot struct {
	LetakTanah                  string `json:"letakTanah"`
	NamaPemegangHak             string `json:"namaPemegangHak"`
	LetterC                     string `json:"letterC"`
	NomorSuratKeteranganGarapan string `json:"nomorSuratKeteranganGarapan"`
	Luas                        int    `json:"luas"`
	Keterangan                  string `json:"keterangan"`
}

func tanahGarapanFromSnapshot(payload []byte) (entity.TanahGarapanEntry, error) {
	var snap tanahGarapanSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return entity.TanahGarapanEntry{}, err
	}
	return entity.TanahGarapanEntry{
		LetakTanah:                  snap.LetakTanah,
		NamaPemegangHak:             snap.NamaPemegangHak,
		LetterC:                     snap.LetterC,
		NomorSuratKeteranganGarapan: snap.NomorSuratKeteranganGarapan,
		Luas:                        snap.Luas,
		Keterangan:                  snap.Keterangan,
	}, nil
}

func encodeAttendanceSnapshot(a entity.Attendance) ([]byte, error) {
	return json.Marshal(a)
}

// attendanceSnapshot drops the denormalized user relation the delete captured;
// only the userId reference is kept.
type attendanceSnapshot struct {
	UserID   uuid.UUID  `json:"userId"`
	Date     time.Time  `json:"date"`
	CheckIn  time.Time  `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
}

func attendanceFromSnapshot(payload []byte) (entity.Attendance, error) {
	var snap attendanceSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return entity.Attendance{}, err
	}
	return entity.Attendance{
		UserID:   snap.UserID,
		Date:     snap.Date,
		CheckIn:  snap.CheckIn,
		CheckOut: snap.CheckOut,
	}, nil
}
