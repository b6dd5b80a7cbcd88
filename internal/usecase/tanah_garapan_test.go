package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/google/uuid"
)

func newTanahGarapanUC() (*TanahGarapan, *MockTanahGarapanRepository, *MockActivityLogRepository) {
	entries := new(MockTanahGarapanRepository)
	logs := new(MockActivityLogRepository)
	outbox := new(MockOutboxAppender)
	outbox.On("Append", mock.Anything, mock.AnythingOfType("*entity.OutboxEvent")).Return(nil).Maybe()
	return NewTanahGarapan(stubStore{}, entries, logs, outbox, testLogger()), entries, logs
}

func TestTanahGarapan_Create_RecordsActivity(t *testing.T) {
	uc, entries, logs := newTanahGarapanUC()

	entries.On("Create", mock.Anything, mock.AnythingOfType("*entity.TanahGarapanEntry")).Return(nil)

	var logged *entity.ActivityLog
	logs.On("Append", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(args mock.Arguments) { logged = args.Get(1).(*entity.ActivityLog) }).
		Return(nil)

	_, err := uc.Create(context.Background(), service.TanahGarapanInput{
		LetakTanah:                  "Blok A",
		NamaPemegangHak:             "Budi Santoso",
		LetterC:                     "C-12",
		NomorSuratKeteranganGarapan: "SKG-7",
		Luas:                        400,
	}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, entity.ActionCreateTanahGarapan, logged.Action)
	assert.Equal(t, "Created new entry for 'Budi Santoso' in 'Blok A'.", logged.Details)
}

func TestTanahGarapan_Create_RejectsNonPositiveLuas(t *testing.T) {
	uc, entries, _ := newTanahGarapanUC()

	_, err := uc.Create(context.Background(), service.TanahGarapanInput{
		LetakTanah:      "Blok A",
		NamaPemegangHak: "Budi",
		Luas:            0,
	}, "admin")

	assert.True(t, repository.IsValidation(err))
	entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTanahGarapan_Delete_SnapshotsRow(t *testing.T) {
	uc, entries, logs := newTanahGarapanUC()

	id := uuid.New()
	entries.On("GetByID", mock.Anything, id).Return(entity.TanahGarapanEntry{
		ID:              id,
		LetakTanah:      "Blok A",
		NamaPemegangHak: "Budi Santoso",
		Luas:            400,
	}, nil)
	entries.On("DeleteByID", mock.Anything, id).Return(nil)

	var logged *entity.ActivityLog
	logs.On("Append", mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(args mock.Arguments) { logged = args.Get(1).(*entity.ActivityLog) }).
		Return(nil)

	err := uc.Delete(context.Background(), id, "admin")

	assert.NoError(t, err)
	assert.Equal(t, entity.ActionDeleteTanahGarapan, logged.Action)

	restored, err := tanahGarapanFromSnapshot(logged.Payload)
	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso", restored.NamaPemegangHak)
	assert.Equal(t, uuid.Nil, restored.ID)
}

func TestTanahGarapan_ListByLetakTanah_EmptyIsNotFound(t *testing.T) {
	uc, entries, _ := newTanahGarapanUC()

	entries.On("ListByLetakTanah", mock.Anything, "Blok Z").Return([]entity.TanahGarapanEntry{}, nil)

	_, err := uc.ListByLetakTanah(context.Background(), "Blok Z")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
