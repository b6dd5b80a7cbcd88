package service

import (
	"context"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

// CertificateInput is the structurally valid field set supplied by the form
// layer. NamaPemegang arrives as an ordered list of holder names.
type CertificateInput struct {
	Kode               string
	NamaPemegang       []string
	SuratHak           string
	NoSertifikat       string
	LokasiTanah        string
	LuasM2             int
	TglTerbit          time.Time
	SuratUkur          string
	NIB                string
	PendaftaranPertama time.Time
}

type CertificateService interface {
	Create(ctx context.Context, in CertificateInput, actor string) (entity.Certificate, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.Certificate, error)
	Update(ctx context.Context, id uuid.UUID, in CertificateInput, actor string) (entity.Certificate, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
	List(ctx context.Context, limit int, cursor string) ([]entity.Certificate, string, error)
}
