package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAttendanceService struct {
	gotCheckOutID uuid.UUID
	gotActor      string
}

func (s *stubAttendanceService) CheckIn(ctx context.Context, userID uuid.UUID, actor string) (entity.Attendance, error) {
	return entity.Attendance{UserID: userID}, nil
}

func (s *stubAttendanceService) CheckOut(ctx context.Context, attendanceID uuid.UUID, actor string) (entity.Attendance, error) {
	s.gotCheckOutID = attendanceID
	s.gotActor = actor
	return entity.Attendance{ID: attendanceID}, nil
}

func (s *stubAttendanceService) TodayForUser(ctx context.Context, userID uuid.UUID) (entity.Attendance, error) {
	return entity.Attendance{}, nil
}

func (s *stubAttendanceService) HistoryForUser(ctx context.Context, userID uuid.UUID) ([]entity.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceService) List(ctx context.Context, filter repository.AttendanceFilter) ([]entity.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceService) Update(ctx context.Context, id uuid.UUID, upd service.AttendanceUpdate, actor string) (entity.Attendance, error) {
	return entity.Attendance{ID: id}, nil
}

func (s *stubAttendanceService) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	return nil
}

// routerFixture registers the real route table so these tests catch any
// mismatch between a registered path and the params its handler reads.
func routerFixture(attendance service.AttendanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, nil, nil, nil, attendance, nil, nil, nil)
	engine := gin.New()
	authStub := func(c *gin.Context) {
		c.Set(middleware.ActorNameCtx, "Budi")
		c.Set(middleware.ActorRoleCtx, entity.RoleAdmin)
		c.Set(middleware.ActorIDCtx, uuid.NewString())
		c.Next()
	}
	NewRouter(h).RegisterRoutes(engine, authStub)
	return engine
}

func TestCheckOutRoute_PassesAttendanceID(t *testing.T) {
	attendance := &stubAttendanceService{}
	engine := routerFixture(attendance)

	attendanceID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-out/"+attendanceID.String(), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, attendanceID, attendance.gotCheckOutID)
	assert.Equal(t, "Budi", attendance.gotActor)
}

func TestCheckOutRoute_BadID(t *testing.T) {
	engine := routerFixture(&stubAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-out/not-a-uuid", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestCheckOutRoute_RequiresID(t *testing.T) {
	attendance := &stubAttendanceService{}
	engine := routerFixture(attendance)

	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-out", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.GreaterOrEqual(t, w.Code, 300)
	assert.Equal(t, uuid.Nil, attendance.gotCheckOutID)
}
