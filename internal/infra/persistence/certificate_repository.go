package persistence

import (
	"context"
	"errors"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/infra/pagination"
	"github.com/google/uuid"
)

type CertificateRepository struct {
	db *DB
}

var _ repository.CertificateRepository = (*CertificateRepository)(nil)

func NewCertificateRepository(db *DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) certConstraints(cert *entity.Certificate) map[string]uniqueField {
	return map[string]uniqueField{
		"uq_certificates_no_sertifikat": {field: "no_sertifikat", value: cert.NoSertifikat},
		"uq_certificates_nib":           {field: "nib", value: cert.NIB},
	}
}

func (r *CertificateRepository) Create(ctx context.Context, cert *entity.Certificate) error {
	if err := r.db.Write(ctx).Create(cert).Error; err != nil {
		return translateUnique(err, r.certConstraints(cert))
	}
	return nil
}

func (r *CertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Certificate, error) {
	var cert entity.Certificate
	if err := r.db.Read(ctx).First(&cert, "id = ?", id).Error; err != nil {
		return entity.Certificate{}, translateNotFound(err)
	}
	return cert, nil
}

func (r *CertificateRepository) ExistsNoSertifikat(ctx context.Context, noSertifikat string, excludeID uuid.UUID) (bool, error) {
	return r.exists(ctx, "no_sertifikat = ?", noSertifikat, excludeID)
}

func (r *CertificateRepository) ExistsNIB(ctx context.Context, nib string, excludeID uuid.UUID) (bool, error) {
	return r.exists(ctx, "nib = ?", nib, excludeID)
}

func (r *CertificateRepository) exists(ctx context.Context, cond string, value string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Read(ctx).Model(&entity.Certificate{}).Where(cond, value)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CertificateRepository) Update(ctx context.Context, cert *entity.Certificate) error {
	result := r.db.Write(ctx).Model(&entity.Certificate{}).Where("id = ?", cert.ID).Updates(map[string]any{
		"kode":                cert.Kode,
		"nama_pemegang":       cert.NamaPemegang,
		"surat_hak":           cert.SuratHak,
		"no_sertifikat":       cert.NoSertifikat,
		"lokasi_tanah":        cert.LokasiTanah,
		"luas_m2":             cert.LuasM2,
		"tgl_terbit":          cert.TglTerbit,
		"surat_ukur":          cert.SuratUkur,
		"nib":                 cert.NIB,
		"pendaftaran_pertama": cert.PendaftaranPertama,
	})
	if result.Error != nil {
		return translateUnique(result.Error, r.certConstraints(cert))
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CertificateRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.Write(ctx).Delete(&entity.Certificate{}, "id = ?", id).Error
}

func (r *CertificateRepository) ListCursor(ctx context.Context, limit int, cursor string) ([]entity.Certificate, error) {
	var certs []entity.Certificate
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

	if err := query.Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Read(ctx).Model(&entity.Certificate{}).Count(&count).Error
	return count, err
}

func (r *CertificateRepository) RecentByTglTerbit(ctx context.Context, limit int) ([]entity.Certificate, error) {
	if limit <= 0 {
		limit = 5
	}
	var certs []entity.Certificate
	err := r.db.Read(ctx).Order("tgl_terbit DESC").Limit(limit).Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) CountBySuratHak(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		SuratHak string
		Count    int64
	}
	err := r.db.Read(ctx).Model(&entity.Certificate{}).
		Select("surat_hak, COUNT(*) AS count").
		Group("surat_hak").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.SuratHak] = row.Count
	}
	return out, nil
}
