package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/infra/pagination"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TanahGarapan struct {
	store   repository.Store
	entries repository.TanahGarapanRepository
	rec     *recorder
	log     *logrus.Logger
}

var _ service.TanahGarapanService = (*TanahGarapan)(nil)

func NewTanahGarapan(store repository.Store, entries repository.TanahGarapanRepository, logs repository.ActivityLogRepository, outbox OutboxAppender, log *logrus.Logger) *TanahGarapan {
	return &TanahGarapan{store: store, entries: entries, rec: newRecorder(logs, outbox), log: log}
}

func (u *TanahGarapan) Create(ctx context.Context, in service.TanahGarapanInput, actor string) (entity.TanahGarapanEntry, error) {
	if in.Luas <= 0 {
		return entity.TanahGarapanEntry{}, repository.Validation("luas must be a positive number")
	}

	var e entity.TanahGarapanEntry
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		e = entity.TanahGarapanEntry{
			LetakTanah:                  in.LetakTanah,
			NamaPemegangHak:             in.NamaPemegangHak,
			LetterC:                     in.LetterC,
			NomorSuratKeteranganGarapan: in.NomorSuratKeteranganGarapan,
			Luas:                        in.Luas,
			Keterangan:                  in.Keterangan,
		}
		if err := u.entries.Create(txCtx, &e); err != nil {
			return err
		}

		details := fmt.Sprintf("Created new entry for '%s' in '%s'.", e.NamaPemegangHak, e.LetakTanah)
		return u.rec.record(txCtx, actor, entity.ActionCreateTanahGarapan, details, nil, "tanah_garapan", e.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("create tanah garapan entry failed")
		return entity.TanahGarapanEntry{}, err
	}
	return e, nil
}

func (u *TanahGarapan) GetByID(ctx context.Context, id uuid.UUID) (entity.TanahGarapanEntry, error) {
	e, err := u.entries.GetByID(ctx, id)
	if err != nil {
		u.log.WithError(err).Error("get tanah garapan entry failed")
		return entity.TanahGarapanEntry{}, err
	}
	return e, nil
}

func (u *TanahGarapan) Update(ctx context.Context, id uuid.UUID, in service.TanahGarapanInput, actor string) (entity.TanahGarapanEntry, error) {
	if in.Luas <= 0 {
		return entity.TanahGarapanEntry{}, repository.Validation("luas must be a positive number")
	}

	var e entity.TanahGarapanEntry
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := u.entries.GetByID(txCtx, id); err != nil {
			return err
		}

		e = entity.TanahGarapanEntry{
			ID:                          id,
			LetakTanah:                  in.LetakTanah,
			NamaPemegangHak:             in.NamaPemegangHak,
			LetterC:                     in.LetterC,
			NomorSuratKeteranganGarapan: in.NomorSuratKeteranganGarapan,
			Luas:                        in.Luas,
			Keterangan:                  in.Keterangan,
		}
		if err := u.entries.Update(txCtx, &e); err != nil {
			return err
		}
		updated, err := u.entries.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		e = updated

		details := fmt.Sprintf("Updated entry for '%s' in '%s'.", e.NamaPemegangHak, e.LetakTanah)
		return u.rec.record(txCtx, actor, entity.ActionUpdateTanahGarapan, details, nil, "tanah_garapan", e.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("update tanah garapan entry failed")
		return entity.TanahGarapanEntry{}, err
	}
	return e, nil
}

func (u *TanahGarapan) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		e, err := u.entries.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}

		payload, err := encodeTanahGarapanSnapshot(e)
		if err != nil {
			return err
		}
		if err := u.entries.DeleteByID(txCtx, id); err != nil {
			return err
		}

		details := fmt.Sprintf("Deleted entry for '%s' in '%s'.", e.NamaPemegangHak, e.LetakTanah)
		return u.rec.record(txCtx, actor, entity.ActionDeleteTanahGarapan, details, payload, "tanah_garapan", e.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("delete tanah garapan entry failed")
		return err
	}
	return nil
}

func (u *TanahGarapan) List(ctx context.Context, limit int, cursor string) ([]entity.TanahGarapanEntry, string, error) {
	entries, err := u.entries.ListCursor(ctx, limit, cursor)
	if err != nil {
		u.log.WithError(err).Error("list tanah garapan entries failed")
		return nil, "", err
	}
	nextCursor := ""
	if len(entries) > 0 && (limit <= 0 || len(entries) == limit) {
		last := entries[len(entries)-1]
		nextCursor = pagination.Encode(last.CreatedAt, last.ID)
	}
	return entries, nextCursor, nil
}

func (u *TanahGarapan) ListByLetakTanah(ctx context.Context, letakTanah string) ([]entity.TanahGarapanEntry, error) {
	entries, err := u.entries.ListByLetakTanah(ctx, letakTanah)
	if err != nil {
		u.log.WithError(err).Error("list tanah garapan by letak tanah failed")
		return nil, err
	}
	if len(entries) == 0 {
		return nil, repository.ErrNotFound
	}
	return entries, nil
}
