package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCertificateFromSnapshot_ToleratesMalformedHolders(t *testing.T) {
	// nama_pemegang written as a plain string by an earlier schema.
	payload := []byte(`{"kode":"K-0001","nama_pemegang":"Budi Santoso","no_sertifikat":"SRT-000123","nib":"NIB-00000123","luas_m2":250}`)

	cert, err := certificateFromSnapshot(payload)

	assert.NoError(t, err)
	assert.Equal(t, "SRT-000123", cert.NoSertifikat)
	assert.NotNil(t, cert.NamaPemegang)
	assert.Empty(t, cert.NamaPemegang)
}

func TestCertificateFromSnapshot_RejectsGarbage(t *testing.T) {
	_, err := certificateFromSnapshot([]byte(`not json`))
	assert.Error(t, err)
}

func TestUserFromSnapshot_DropsIdentityAndHash(t *testing.T) {
	payload := []byte(`{"id":"0b4e7d0a-9f1c-4d38-b1a8-2e48d1c5a111","name":"Siti","email":"siti@example.com","role":"manager","password":"$2a$04$hash"}`)

	user, err := userFromSnapshot(payload)

	assert.NoError(t, err)
	assert.Equal(t, "Siti", user.Name)
	assert.Equal(t, "siti@example.com", user.Email)
	assert.Equal(t, "manager", user.Role)
	assert.Empty(t, user.Password)
	assert.Empty(t, user.ID)
}

func TestTanahGarapanSnapshotRoundTrip(t *testing.T) {
	payload := []byte(`{"letakTanah":"Blok A","namaPemegangHak":"Budi","letterC":"C-12","nomorSuratKeteranganGarapan":"SKG-7","luas":400,"keterangan":"warisan"}`)

	e, err := tanahGarapanFromSnapshot(payload)

	assert.NoError(t, err)
	assert.Equal(t, "Blok A", e.LetakTanah)
	assert.Equal(t, "Budi", e.NamaPemegangHak)
	assert.Equal(t, 400, e.Luas)
	assert.Equal(t, "warisan", e.Keterangan)
}
