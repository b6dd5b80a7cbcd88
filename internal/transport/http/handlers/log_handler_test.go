package handlers

import (
	"context"
	"errors"
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

type stubLogService struct {
	listLogs      []entity.ActivityLog
	listErr       error
	restoreResult service.RestoreResult
	restoreErr    error
	gotLogID      uuid.UUID
	gotActor      string
}

func (s *stubLogService) List(ctx context.Context, limit int) ([]entity.ActivityLog, error) {
	return s.listLogs, s.listErr
}

func (s *stubLogService) Restore(ctx context.Context, logID uuid.UUID, actor string) (service.RestoreResult, error) {
	s.gotLogID = logID
	s.gotActor = actor
	return s.restoreResult, s.restoreErr
}

func logTestRouter(logs service.ActivityLogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, nil, nil, nil, nil, logs, nil, nil)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ActorNameCtx, "admin")
		c.Next()
	})
	router.GET("/api/logs", h.listLogs)
	router.POST("/api/logs/:id/restore", h.restoreLog)
	return router
}

func TestRestoreLog_PassesActorAndID(t *testing.T) {
	logs := &stubLogService{restoreResult: service.RestoreResult{Success: true, Message: "Data restored successfully."}}
	router := logTestRouter(logs)

	logID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logs/"+logID.String()+"/restore", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, logID, logs.gotLogID)
	assert.Equal(t, "admin", logs.gotActor)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Data restored successfully.")
}

func TestRestoreLog_FailureStillAnswers200(t *testing.T) {
	logs := &stubLogService{
		restoreResult: service.RestoreResult{Success: false, Message: "An unexpected error occurred during restoration."},
		restoreErr:    errors.New("connection reset"),
	}
	router := logTestRouter(logs)

	req := httptest.NewRequest(http.MethodPost, "/api/logs/"+uuid.NewString()+"/restore", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestRestoreLog_BadID(t *testing.T) {
	router := logTestRouter(&stubLogService{})

	req := httptest.NewRequest(http.MethodPost, "/api/logs/not-a-uuid/restore", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondServiceError_Mapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"conflict", repository.Conflict("email", "budi@example.com"), http.StatusConflict},
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"validation", repository.Validation("luas must be a positive number"), http.StatusBadRequest},
		{"bad cursor", repository.ErrInvalidCursor, http.StatusBadRequest},
		{"unexpected", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}
	gin.SetMode(gin.TestMode)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondServiceError(c, tc.err, "request failed")
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusInternalServerError {
				// Driver errors never leak to clients.
				assert.NotContains(t, w.Body.String(), "pq:")
			}
		})
	}
}
