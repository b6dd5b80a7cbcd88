package service

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

type TanahGarapanInput struct {
	LetakTanah                  string
	NamaPemegangHak             string
	LetterC                     string
	NomorSuratKeteranganGarapan string
	Luas                        int
	Keterangan                  string
}

type TanahGarapanService interface {
	Create(ctx context.Context, in TanahGarapanInput, actor string) (entity.TanahGarapanEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.TanahGarapanEntry, error)
	Update(ctx context.Context, id uuid.UUID, in TanahGarapanInput, actor string) (entity.TanahGarapanEntry, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
	List(ctx context.Context, limit int, cursor string) ([]entity.TanahGarapanEntry, string, error)
	ListByLetakTanah(ctx context.Context, letakTanah string) ([]entity.TanahGarapanEntry, error)
}
