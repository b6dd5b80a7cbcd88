package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func certificateInput() service.CertificateInput {
	return service.CertificateInput{
		Kode:               "K-0001",
		NamaPemegang:       []string{"Budi Santoso", "Siti Rahayu"},
		SuratHak:           "HM",
		NoSertifikat:       "SRT-000123",
		LokasiTanah:        "Kel. Sukamaju, Kec. Cibinong",
		LuasM2:             250,
		TglTerbit:          time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC),
		SuratUkur:          "SU-000123",
		NIB:                "NIB-00000123",
		PendaftaranPertama: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCertificate_Create_RecordsActivity(t *testing.T) {
	certs := new(MockCertificateRepository)
	logs := new(MockActivityLogRepository)
	outbox := new(MockOutboxAppender)
	uc := NewCertificate(stubStore{}, certs, logs, outbox, testLogger())

	certs.On("ExistsNoSertifikat", mock.Anything, "SRT-000123", uuid.Nil).Return(false, nil)
	certs.On("ExistsNIB", mock.Anything, "NIB-00000123", uuid.Nil).Return(false, nil)
	certs.On("Create", mock.Anything, mock.AnythingOfType("*entity.Certificate")).Return(nil)

	var logged *entity.ActivityLog
	logs.On("Append", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(args mock.Arguments) { logged = args.Get(1).(*entity.ActivityLog) }).
		Return(nil)
	outbox.On("Append", mock.Anything, mock.AnythingOfType("*entity.OutboxEvent")).Return(nil)

	cert, err := uc.Create(context.Background(), certificateInput(), "admin")

	assert.NoError(t, err)
	assert.Equal(t, "SRT-000123", cert.NoSertifikat)
	assert.Equal(t, entity.ActionCreateCertificate, logged.Action)
	assert.Equal(t, "admin", logged.User)
	assert.Equal(t, "Created certificate 'SRT-000123' for Budi Santoso, Siti Rahayu.", logged.Details)
	assert.Empty(t, logged.Payload)
	certs.AssertExpectations(t)
	logs.AssertExpectations(t)
	outbox.AssertExpectations(t)
}

func TestCertificate_Create_ConflictNamesField(t *testing.T) {
	certs := new(MockCertificateRepository)
	logs := new(MockActivityLogRepository)
	outbox := new(MockOutboxAppender)
	uc := NewCertificate(stubStore{}, certs, logs, outbox, testLogger())

	certs.On("ExistsNoSertifikat", mock.Anything, "SRT-000123", uuid.Nil).Return(true, nil)

	_, err := uc.Create(context.Background(), certificateInput(), "admin")

	assert.True(t, repository.IsConflict(err))
	assert.Contains(t, err.Error(), "no_sertifikat")
	assert.Contains(t, err.Error(), "SRT-000123")
	logs.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	certs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCertificate_Create_RejectsNonPositiveLuas(t *testing.T) {
	certs := new(MockCertificateRepository)
	uc := NewCertificate(stubStore{}, certs, new(MockActivityLogRepository), new(MockOutboxAppender), testLogger())

	in := certificateInput()
	in.LuasM2 = 0
	_, err := uc.Create(context.Background(), in, "admin")

	assert.True(t, repository.IsValidation(err))
	certs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCertificate_Update_ExcludesSelfFromUniqueness(t *testing.T) {
	certs := new(MockCertificateRepository)
	logs := new(MockActivityLogRepository)
	outbox := new(MockOutboxAppender)
	uc := NewCertificate(stubStore{}, certs, logs, outbox, testLogger())

	id := uuid.New()
	existing := entity.Certificate{ID: id, NoSertifikat: "SRT-000123", NIB: "NIB-00000123"}
	certs.On("GetByID", mock.Anything, id).Return(existing, nil)
	certs.On("ExistsNoSertifikat", mock.Anything, "SRT-000123", id).Return(false, nil)
	certs.On("ExistsNIB", mock.Anything, "NIB-00000123", id).Return(false, nil)
	certs.On("Update", mock.Anything, mock.AnythingOfType("*entity.Certificate")).Return(nil)
	logs.On("Append", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)
	outbox.On("Append", mock.Anything, mock.AnythingOfType("*entity.OutboxEvent")).Return(nil)

	_, err := uc.Update(context.Background(), id, certificateInput(), "admin")

	assert.NoError(t, err)
	certs.AssertExpectations(t)
}

func TestCertificate_Delete_MissingRowIsNoOp(t *testing.T) {
	certs := new(MockCertificateRepository)
	logs := new(MockActivityLogRepository)
	outbox := new(MockOutboxAppender)
	uc := NewCertificate(stubStore{}, certs, logs, outbox, testLogger())

	id := uuid.New()
	certs.On("GetByID", mock.Anything, id).Return(entity.Certificate{}, repository.ErrNotFound)

	err := uc.Delete(context.Background(), id, "admin")

	assert.NoError(t, err)
	certs.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	logs.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCertificate_Delete_SnapshotsRow(t *testing.T) {
	certs := new(MockCertificateRepository)
	logs := new(MockActivityLogRepository)
	outbox := new(MockOutboxAppender)
	uc := NewCertificate(stubStore{}, certs, logs, outbox, testLogger())

	id := uuid.New()
	existing := entity.Certificate{
		ID:           id,
		Kode:         "K-0001",
		NamaPemegang: []string{"Budi Santoso"},
		SuratHak:     "HM",
		NoSertifikat: "SRT-000123",
		NIB:          "NIB-00000123",
		LuasM2:       250,
	}
	certs.On("GetByID", mock.Anything, id).Return(existing, nil)
	certs.On("DeleteByID", mock.Anything, id).Return(nil)

	var logged *entity.ActivityLog
	logs.On("Append", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(args mock.Arguments) { logged = args.Get(1).(*entity.ActivityLog) }).
		Return(nil)
	outbox.On("Append", mock.Anything, mock.AnythingOfType("*entity.OutboxEvent")).Return(nil)

	err := uc.Delete(context.Background(), id, "admin")

	assert.NoError(t, err)
	assert.Equal(t, entity.ActionDeleteCertificate, logged.Action)
	assert.NotEmpty(t, logged.Payload)

	var snap map[string]any
	assert.NoError(t, json.Unmarshal(logged.Payload, &snap))
	assert.Equal(t, "SRT-000123", snap["no_sertifikat"])
	assert.Equal(t, "NIB-00000123", snap["nib"])
	certs.AssertExpectations(t)
}

func TestCertificate_List_EmitsNextCursorOnFullPage(t *testing.T) {
	certs := new(MockCertificateRepository)
	uc := NewCertificate(stubStore{}, certs, new(MockActivityLogRepository), new(MockOutboxAppender), testLogger())

	page := []entity.Certificate{
		{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), CreatedAt: time.Now().UTC().Add(-time.Minute)},
	}
	certs.On("ListCursor", mock.Anything, 2, "").Return(page, nil)

	got, next, err := uc.List(context.Background(), 2, "")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEmpty(t, next)
}

func TestCertificate_List_NoCursorOnShortPage(t *testing.T) {
	certs := new(MockCertificateRepository)
	uc := NewCertificate(stubStore{}, certs, new(MockActivityLogRepository), new(MockOutboxAppender), testLogger())

	page := []entity.Certificate{{ID: uuid.New(), CreatedAt: time.Now().UTC()}}
	certs.On("ListCursor", mock.Anything, 5, "").Return(page, nil)

	_, next, err := uc.List(context.Background(), 5, "")

	assert.NoError(t, err)
	assert.Empty(t, next)
}
