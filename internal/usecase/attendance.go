package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Attendance struct {
	store      repository.Store
	attendance repository.AttendanceRepository
	users      repository.UserRepository
	rec        *recorder
	log        *logrus.Logger
	now        func() time.Time
}

var _ service.AttendanceService = (*Attendance)(nil)

func NewAttendance(store repository.Store, attendance repository.AttendanceRepository, users repository.UserRepository, logs repository.ActivityLogRepository, outbox OutboxAppender, log *logrus.Logger) *Attendance {
	return &Attendance{
		store:      store,
		attendance: attendance,
		users:      users,
		rec:        newRecorder(logs, outbox),
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CheckIn creates today's attendance record for the user. The (userId, date)
// uniqueness makes a second check-in on the same calendar day a Conflict no
// matter the time of day.
func (u *Attendance) CheckIn(ctx context.Context, userID uuid.UUID, actor string) (entity.Attendance, error) {
	now := u.now()
	today := entity.StartOfDay(now)

	var record entity.Attendance
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		user, err := u.users.GetByID(txCtx, userID)
		if err != nil {
			return err
		}

		if _, err := u.attendance.GetByUserAndDate(txCtx, userID, today); err == nil {
			return repository.Conflict("userId, date", fmt.Sprintf("%s, %s", userID, today.Format("2006-01-02")))
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		record = entity.Attendance{
			UserID:  userID,
			Date:    today,
			CheckIn: now,
		}
		if err := u.attendance.Create(txCtx, &record); err != nil {
			return err
		}

		details := fmt.Sprintf("User %s checked in.", user.Name)
		return u.rec.record(txCtx, actor, entity.ActionCheckIn, details, nil, "attendance", record.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("check in failed")
		return entity.Attendance{}, err
	}
	return record, nil
}

func (u *Attendance) CheckOut(ctx context.Context, attendanceID uuid.UUID, actor string) (entity.Attendance, error) {
	now := u.now()

	var record entity.Attendance
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		current, err := u.attendance.GetByID(txCtx, attendanceID)
		if err != nil {
			return err
		}
		if current.CheckOut != nil {
			return repository.Validation("user has already checked out")
		}
		if !now.After(current.CheckIn) {
			return repository.Validation("check-out must be after check-in")
		}

		current.CheckOut = &now
		if err := u.attendance.Update(txCtx, &current); err != nil {
			return err
		}
		record = current

		name := actor
		if current.User != nil {
			name = current.User.Name
		}
		details := fmt.Sprintf("User %s checked out.", name)
		return u.rec.record(txCtx, actor, entity.ActionCheckOut, details, nil, "attendance", record.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("check out failed")
		return entity.Attendance{}, err
	}
	return record, nil
}

func (u *Attendance) TodayForUser(ctx context.Context, userID uuid.UUID) (entity.Attendance, error) {
	today := entity.StartOfDay(u.now())
	record, err := u.attendance.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			u.log.WithError(err).Error("get today's attendance failed")
		}
		return entity.Attendance{}, err
	}
	return record, nil
}

func (u *Attendance) HistoryForUser(ctx context.Context, userID uuid.UUID) ([]entity.Attendance, error) {
	records, err := u.attendance.ListByUser(ctx, userID, 30)
	if err != nil {
		u.log.WithError(err).Error("get attendance history failed")
		return nil, err
	}
	return records, nil
}

func (u *Attendance) List(ctx context.Context, filter repository.AttendanceFilter) ([]entity.Attendance, error) {
	records, err := u.attendance.List(ctx, filter)
	if err != nil {
		u.log.WithError(err).Error("list attendance failed")
		return nil, err
	}
	return records, nil
}

func (u *Attendance) Update(ctx context.Context, id uuid.UUID, upd service.AttendanceUpdate, actor string) (entity.Attendance, error) {
	var record entity.Attendance
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		current, err := u.attendance.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if upd.CheckIn != nil {
			current.CheckIn = *upd.CheckIn
		}
		switch {
		case upd.ClearCheckOut:
			current.CheckOut = nil
		case upd.CheckOut != nil:
			current.CheckOut = upd.CheckOut
		}
		if current.CheckOut != nil && !current.CheckOut.After(current.CheckIn) {
			return repository.Validation("check-out must be after check-in")
		}

		if err := u.attendance.Update(txCtx, &current); err != nil {
			return err
		}
		record = current

		name := "unknown"
		if current.User != nil {
			name = current.User.Name
		}
		details := fmt.Sprintf("Updated attendance for %s on %s.", name, current.Date.Format("2006-01-02"))
		return u.rec.record(txCtx, actor, entity.ActionUpdateAttendance, details, nil, "attendance", record.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("update attendance failed")
		return entity.Attendance{}, err
	}
	return record, nil
}

func (u *Attendance) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	err := u.store.WithTx(ctx, func(txCtx context.Context) error {
		record, err := u.attendance.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}

		payload, err := encodeAttendanceSnapshot(record)
		if err != nil {
			return err
		}
		if err := u.attendance.DeleteByID(txCtx, id); err != nil {
			return err
		}

		name := "unknown"
		if record.User != nil {
			name = record.User.Name
		}
		details := fmt.Sprintf("Deleted attendance for %s on %s.", name, record.Date.Format("2006-01-02"))
		return u.rec.record(txCtx, actor, entity.ActionDeleteAttendance, details, payload, "attendance", record.ID)
	})
	if err != nil {
		u.log.WithError(err).Error("delete attendance failed")
		return err
	}
	return nil
}
