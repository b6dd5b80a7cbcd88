package persistence

import (
	"context"
	"errors"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/infra/pagination"
	"github.com/google/uuid"
)

type TanahGarapanRepository struct {
	db *DB
}

var _ repository.TanahGarapanRepository = (*TanahGarapanRepository)(nil)

func NewTanahGarapanRepository(db *DB) *TanahGarapanRepository {
	return &TanahGarapanRepository{db: db}
}

func (r *TanahGarapanRepository) Create(ctx context.Context, e *entity.TanahGarapanEntry) error {
	return r.db.Write(ctx).Create(e).Error
}

func (r *TanahGarapanRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.TanahGarapanEntry, error) {
	var e entity.TanahGarapanEntry
	if err := r.db.Read(ctx).First(&e, "id = ?", id).Error; err != nil {
		return entity.TanahGarapanEntry{}, translateNotFound(err)
	}
	return e, nil
}

func (r *TanahGarapanRepository) Update(ctx context.Context, e *entity.TanahGarapanEntry) error {
	result := r.db.Write(ctx).Model(&entity.TanahGarapanEntry{}).Where("id = ?", e.ID).Updates(map[string]any{
		"letak_tanah":                    e.LetakTanah,
		"nama_pemegang_hak":              e.NamaPemegangHak,
		"letter_c":                       e.LetterC,
		"nomor_surat_keterangan_garapan": e.NomorSuratKeteranganGarapan,
		"luas":                           e.Luas,
		"keterangan":                     e.Keterangan,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TanahGarapanRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.Write(ctx).Delete(&entity.TanahGarapanEntry{}, "id = ?", id).Error
}

func (r *TanahGarapanRepository) ListCursor(ctx context.Context, limit int, cursor string) ([]entity.TanahGarapanEntry, error) {
	var entries []entity.TanahGarapanEntry
	if limit <= 0 {
		limit = 50
	}

	query := r.db.Read(ctx).
		Limit(limit).
		Order("created_at DESC").
		Order("id DESC")

	if cursor != "" {
		cursorTime, cursorID, err := pagination.Decode(cursor)
		if err != nil {
			if errors.Is(err, pagination.ErrInvalidCursor) {
				return nil, repository.ErrInvalidCursor
			}
			return nil, err
		}
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursorTime, cursorTime, cursorID)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *TanahGarapanRepository) ListByLetakTanah(ctx context.Context, letakTanah string) ([]entity.TanahGarapanEntry, error) {
	var entries []entity.TanahGarapanEntry
	err := r.db.Read(ctx).
		Where("letak_tanah = ?", letakTanah).
		Order("nama_pemegang_hak ASC").
		Find(&entries).Error
	return entries, err
}
