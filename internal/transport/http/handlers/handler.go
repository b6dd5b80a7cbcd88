package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/transport/http/middleware"
	"github.com/Blawness/pkp-studio/internal/transport/http/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth         service.AuthService
	certificates service.CertificateService
	users        service.UserService
	tanahGarapan service.TanahGarapanService
	attendance   service.AttendanceService
	logs         service.ActivityLogService
	dashboard    service.DashboardService
	store        repository.Store
}

func NewHandler(
	auth service.AuthService,
	certificates service.CertificateService,
	users service.UserService,
	tanahGarapan service.TanahGarapanService,
	attendance service.AttendanceService,
	logs service.ActivityLogService,
	dashboard service.DashboardService,
	store repository.Store,
) *Handler {
	return &Handler{
		auth:         auth,
		certificates: certificates,
		users:        users,
		tanahGarapan: tanahGarapan,
		attendance:   attendance,
		logs:         logs,
		dashboard:    dashboard,
		store:        store,
	}
}

func actorName(c *gin.Context) string {
	return c.GetString(middleware.ActorNameCtx)
}

// respondServiceError maps the domain error taxonomy to HTTP statuses.
// Conflict and validation messages pass through; anything unexpected gets the
// generic fallback so internals never leak.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case repository.IsConflict(err):
		response.RespondError(c, nethttp.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		response.RespondError(c, nethttp.StatusNotFound, "not found")
	case repository.IsValidation(err):
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrInvalidCursor):
		response.RespondError(c, nethttp.StatusBadRequest, "invalid cursor")
	default:
		response.RespondError(c, nethttp.StatusInternalServerError, fallback)
	}
}

func (h *Handler) health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		response.RespondOK(c, nethttp.StatusServiceUnavailable, gin.H{"status": "down"}, nil)
		return
	}
	response.RespondOK(c, nethttp.StatusOK, gin.H{"status": "ok"}, nil)
}
