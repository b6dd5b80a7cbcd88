package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/infra/security"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	msgNothingToRestore  = "Log entry not found or no data to restore."
	msgNotRecoverable    = "This log entry is not a recoverable deletion."
	msgRestored          = "Data restored successfully."
	msgUnexpectedRestore = "An unexpected error occurred during restoration."
)

// ActivityLog serves the log listing and dispatches restores. A restore
// re-creates a deleted row from the snapshot carried by its DELETE_* entry;
// the new row always gets a fresh identity, the original id stays retired.
type ActivityLog struct {
	store      repository.Store
	logs       repository.ActivityLogRepository
	certs      repository.CertificateRepository
	users      repository.UserRepository
	garapan    repository.TanahGarapanRepository
	attendance repository.AttendanceRepository
	hasher     *security.Hasher
	tempPwLen  int
	rec        *recorder
	log        *logrus.Logger
}

var _ service.ActivityLogService = (*ActivityLog)(nil)

func NewActivityLog(
	store repository.Store,
	logs repository.ActivityLogRepository,
	certs repository.CertificateRepository,
	users repository.UserRepository,
	garapan repository.TanahGarapanRepository,
	attendance repository.AttendanceRepository,
	hasher *security.Hasher,
	tempPwLen int,
	outbox OutboxAppender,
	log *logrus.Logger,
) *ActivityLog {
	return &ActivityLog{
		store:      store,
		logs:       logs,
		certs:      certs,
		users:      users,
		garapan:    garapan,
		attendance: attendance,
		hasher:     hasher,
		tempPwLen:  tempPwLen,
		rec:        newRecorder(logs, outbox),
		log:        log,
	}
}

func (u *ActivityLog) List(ctx context.Context, limit int) ([]entity.ActivityLog, error) {
	logs, err := u.logs.List(ctx, limit)
	if err != nil {
		u.log.WithError(err).Error("list activity logs failed")
		return nil, err
	}
	return logs, nil
}

// Restore runs a single state transition: look up the entry, rebuild the row
// from the snapshot and insert it, then append a RESTORE_DATA entry. Insert
// and audit append share one transaction, so a losing restore leaves no
// trace beyond the returned message.
func (u *ActivityLog) Restore(ctx context.Context, logID uuid.UUID, actor string) (service.RestoreResult, error) {
	logEntry, err := u.logs.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return service.RestoreResult{Success: false, Message: msgNothingToRestore}, nil
		}
		u.log.WithError(err).Error("restore: fetch log entry failed")
		return service.RestoreResult{Success: false, Message: msgUnexpectedRestore}, err
	}
	if len(logEntry.Payload) == 0 {
		return service.RestoreResult{Success: false, Message: msgNothingToRestore}, nil
	}
	if !logEntry.Recoverable() {
		return service.RestoreResult{Success: false, Message: msgNotRecoverable}, nil
	}

	err = u.store.WithTx(ctx, func(txCtx context.Context) error {
		details, aggregate, newID, err := u.reinsert(txCtx, logEntry)
		if err != nil {
			return err
		}
		return u.rec.record(txCtx, actor, entity.ActionRestoreData, details, nil, aggregate, newID)
	})
	if err != nil {
		var ce *repository.ConflictError
		if errors.As(err, &ce) {
			return service.RestoreResult{
				Success: false,
				Message: fmt.Sprintf("Restore failed: an item with the same %s '%s' already exists.", ce.Field, ce.Value),
			}, nil
		}
		u.log.WithError(err).WithField("log_id", logID).Error("restore failed")
		return service.RestoreResult{Success: false, Message: msgUnexpectedRestore}, err
	}
	return service.RestoreResult{Success: true, Message: msgRestored}, nil
}

// reinsert rebuilds and inserts the snapshotted row for the entry's action
// tag, returning the RESTORE_DATA details line and the new row's identity.
func (u *ActivityLog) reinsert(ctx context.Context, logEntry entity.ActivityLog) (string, string, uuid.UUID, error) {
	switch logEntry.Action {
	case entity.ActionDeleteCertificate:
		cert, err := certificateFromSnapshot(logEntry.Payload)
		if err != nil {
			return "", "", uuid.Nil, err
		}
		if err := u.certs.Create(ctx, &cert); err != nil {
			return "", "", uuid.Nil, err
		}
		return fmt.Sprintf("Restored certificate '%s'.", cert.NoSertifikat), "certificate", cert.ID, nil

	case entity.ActionDeleteUser:
		user, err := userFromSnapshot(logEntry.Payload)
		if err != nil {
			return "", "", uuid.Nil, err
		}
		// The snapshotted hash is discarded; a restored account starts
		// with a fresh temporary password.
		tempPassword, err := security.GenerateTempPassword(u.tempPwLen)
		if err != nil {
			return "", "", uuid.Nil, err
		}
		hash, err := u.hasher.Hash(tempPassword)
		if err != nil {
			return "", "", uuid.Nil, err
		}
		user.Password = hash
		if err := u.users.Create(ctx, &user); err != nil {
			return "", "", uuid.Nil, err
		}
		return fmt.Sprintf("Restored user '%s'. A new temporary password was set.", user.Name), "user", user.ID, nil

	case entity.ActionDeleteTanahGarapan:
		e, err := tanahGarapanFromSnapshot(logEntry.Payload)
		if err != nil {
			return "", "", uuid.Nil, err
		}
		if err := u.garapan.Create(ctx, &e); err != nil {
			return "", "", uuid.Nil, err
		}
		return fmt.Sprintf("Restored Tanah Garapan entry for '%s'.", e.NamaPemegangHak), "tanah_garapan", e.ID, nil

	case entity.ActionDeleteAttendance:
		record, err := attendanceFromSnapshot(logEntry.Payload)
		if err != nil {
			return "", "", uuid.Nil, err
		}
		if err := u.attendance.Create(ctx, &record); err != nil {
			return "", "", uuid.Nil, err
		}
		details := fmt.Sprintf("Restored attendance for user ID '%s' on %s.", record.UserID, record.Date.Format("2006-01-02"))
		return details, "attendance", record.ID, nil
	}
	return "", "", uuid.Nil, fmt.Errorf("unsupported restore action %q", logEntry.Action)
}
