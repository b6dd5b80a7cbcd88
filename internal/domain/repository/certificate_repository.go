package repository

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/google/uuid"
)

type CertificateRepository interface {
	Create(ctx context.Context, cert *entity.Certificate) error
	GetByID(ctx context.Context, id uuid.UUID) (entity.Certificate, error)
	// Exists checks pass uuid.Nil as excludeID on create; on update the row
	// being updated is excluded so it never conflicts with itself.
	ExistsNoSertifikat(ctx context.Context, noSertifikat string, excludeID uuid.UUID) (bool, error)
	ExistsNIB(ctx context.Context, nib string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, cert *entity.Certificate) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListCursor(ctx context.Context, limit int, cursor string) ([]entity.Certificate, error)
	Count(ctx context.Context) (int64, error)
	RecentByTglTerbit(ctx context.Context, limit int) ([]entity.Certificate, error)
	CountBySuratHak(ctx context.Context) (map[string]int64, error)
}
