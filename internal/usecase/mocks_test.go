package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/google/uuid"
)

// stubStore satisfies repository.Store without a database; WithTx just runs
// the callback so the mocks below see every call made inside the transaction.
type stubStore struct{}

func (stubStore) Ping(ctx context.Context) error { return nil }

func (stubStore) Close() {}

func (stubStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockCertificateRepository struct {
	mock.Mock
}

func (m *MockCertificateRepository) Create(ctx context.Context, cert *entity.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockCertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Certificate, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) ExistsNoSertifikat(ctx context.Context, noSertifikat string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, noSertifikat, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCertificateRepository) ExistsNIB(ctx context.Context, nib string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, nib, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCertificateRepository) Update(ctx context.Context, cert *entity.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockCertificateRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCertificateRepository) ListCursor(ctx context.Context, limit int, cursor string) ([]entity.Certificate, error) {
	args := m.Called(ctx, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCertificateRepository) RecentByTglTerbit(ctx context.Context, limit int) ([]entity.Certificate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) CountBySuratHak(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ListCursor(ctx context.Context, limit int, cursor string) ([]entity.User, error) {
	args := m.Called(ctx, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockTanahGarapanRepository struct {
	mock.Mock
}

func (m *MockTanahGarapanRepository) Create(ctx context.Context, e *entity.TanahGarapanEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTanahGarapanRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.TanahGarapanEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.TanahGarapanEntry), args.Error(1)
}

func (m *MockTanahGarapanRepository) Update(ctx context.Context, e *entity.TanahGarapanEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTanahGarapanRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTanahGarapanRepository) ListCursor(ctx context.Context, limit int, cursor string) ([]entity.TanahGarapanEntry, error) {
	args := m.Called(ctx, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TanahGarapanEntry), args.Error(1)
}

func (m *MockTanahGarapanRepository) ListByLetakTanah(ctx context.Context, letakTanah string) ([]entity.TanahGarapanEntry, error) {
	args := m.Called(ctx, letakTanah)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TanahGarapanEntry), args.Error(1)
}

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, a *entity.Attendance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Attendance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (entity.Attendance, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(entity.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) Update(ctx context.Context, a *entity.Attendance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttendanceRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttendanceRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Attendance, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) List(ctx context.Context, filter repository.AttendanceFilter) ([]entity.Attendance, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Attendance), args.Error(1)
}

type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockActivityLogRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.ActivityLog, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) List(ctx context.Context, limit int) ([]entity.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOutboxAppender struct {
	mock.Mock
}

func (m *MockOutboxAppender) Append(ctx context.Context, event *entity.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
