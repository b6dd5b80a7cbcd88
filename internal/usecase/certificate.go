package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/infra/pagination"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type Certificate struct {
	store repository.Store
	certs repository.CertificateRepository
	rec   *recorder
	log   *logrus.Logger
}

var _ service.CertificateService = (*Certificate)(nil)

func NewCertificate(store repository.Store, certs repository.CertificateRepository, logs repository.ActivityLogRepository, outbox OutboxAppender, log *logrus.Logger) *Certificate {
	return &Certificate{store: store, certs: certs, rec: newRecorder(logs, outbox), log: log}
}

func validateCertificateInput(in service.CertificateInput) error {
	if in.LuasM2 <= 0 {
		return repository.Validation("luas_m2 must be a positive integer")
	}
	if len(in.NamaPemegang) == 0 {
		return repository.Validation("nama_pemegang must not be empty")
	}
	return nil
}

func (u *Certificate) Create(ctx context.Context, in service.CertificateInput, actor string) (entity.Certificate, error) {
	if err := validateCertificateInput(in); err != nil {
		return entity.Certificate{}, err
	}

	var cert entity.Certificate
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.checkUnique(txCtx, in, uuid.Nil); err != nil {
			return err
		}

		cert = entity.Certificate{
			Kode:               in.Kode,
			NamaPemegang:       pq.StringArray(in.NamaPemegang),
			SuratHak:           in.SuratHak,
			NoSertifikat:       in.NoSertifikat,
			LokasiTanah:        in.LokasiTanah,
			LuasM2:             in.LuasM2,
			TglTerbit:          in.TglTerbit,
			SuratUkur:          in.SuratUkur,
			NIB:                in.NIB,
			PendaftaranPertama: in.PendaftaranPertama,
		}
		if err := u.certs.Create(txCtx, &cert); err != nil {
			return err
		}

		details := fmt.Sprintf("Created certificate '%s' for %s.", cert.NoSertifikat, strings.Join(cert.NamaPemegang, ", "))
		return u.rec.record(txCtx, actor, entity.ActionCreateCertificate, details, nil, "certificate", cert.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("create certificate failed")
		return entity.Certificate{}, err
	}
	return cert, nil
}

func (u *Certificate) GetByID(ctx context.Context, id uuid.UUID) (entity.Certificate, error) {
	cert, err := u.certs.GetByID(ctx, id)
	if err != nil {
		u.log.WithError(err).Error("get certificate failed")
		return entity.Certificate{}, err
	}
	return cert, nil
}

func (u *Certificate) Update(ctx context.Context, id uuid.UUID, in service.CertificateInput, actor string) (entity.Certificate, error) {
	if err := validateCertificateInput(in); err != nil {
		return entity.Certificate{}, err
	}

	var cert entity.Certificate
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := u.certs.GetByID(txCtx, id); err != nil {
			return err
		}
		if err := u.checkUnique(txCtx, in, id); err != nil {
			return err
		}

		cert = entity.Certificate{
			ID:                 id,
			Kode:               in.Kode,
			NamaPemegang:       pq.StringArray(in.NamaPemegang),
			SuratHak:           in.SuratHak,
			NoSertifikat:       in.NoSertifikat,
			LokasiTanah:        in.LokasiTanah,
			LuasM2:             in.LuasM2,
			TglTerbit:          in.TglTerbit,
			SuratUkur:          in.SuratUkur,
			NIB:                in.NIB,
			PendaftaranPertama: in.PendaftaranPertama,
		}
		if err := u.certs.Update(txCtx, &cert); err != nil {
			return err
		}
		updated, err := u.certs.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		cert = updated

		details := fmt.Sprintf("Updated certificate '%s'.", cert.NoSertifikat)
		return u.rec.record(txCtx, actor, entity.ActionUpdateCertificate, details, nil, "certificate", cert.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("update certificate failed")
		return entity.Certificate{}, err
	}
	return cert, nil
}

// Delete is idempotent: a missing row is a no-op with no audit entry. On
// success the full pre-deletion row is snapshotted into the DELETE entry;
// that snapshot is the only copy that remains.
func (u *Certificate) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		cert, err := u.certs.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}

		payload, err := encodeCertificateSnapshot(cert)
		if err != nil {
			return err
		}
		if err := u.certs.DeleteByID(txCtx, id); err != nil {
			return err
		}

		details := fmt.Sprintf("Deleted certificate '%s'.", cert.NoSertifikat)
		return u.rec.record(txCtx, actor, entity.ActionDeleteCertificate, details, payload, "certificate", cert.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("delete certificate failed")
		return err
	}
	return nil
}

func (u *Certificate) List(ctx context.Context, limit int, cursor string) ([]entity.Certificate, string, error) {
	certs, err := u.certs.ListCursor(ctx, limit, cursor)
	if err != nil {
		u.log.WithError(err).Error("list certificates failed")
		return nil, "", err
	}
	nextCursor := ""
	if len(certs) > 0 && (limit <= 0 || len(certs) == limit) {
		last := certs[len(certs)-1]
		nextCursor = pagination.Encode(last.CreatedAt, last.ID)
	}
	return certs, nextCursor, nil
}

func (u *Certificate) checkUnique(ctx context.Context, in service.CertificateInput, excludeID uuid.UUID) error {
	if exists, err := u.certs.ExistsNoSertifikat(ctx, in.NoSertifikat, excludeID); err != nil {
		return err
	} else if exists {
		return repository.Conflict("no_sertifikat", in.NoSertifikat)
	}
	if exists, err := u.certs.ExistsNIB(ctx, in.NIB, excludeID); err != nil {
		return err
	} else if exists {
		return repository.Conflict("nib", in.NIB)
	}
	return nil
}
