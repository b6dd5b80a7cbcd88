package handlers

import (
	nethttp "net/http"
	"strconv"

	"github.com/Blawness/pkp-studio/internal/transport/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) listLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.logs.List(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "list failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, logs, nil)
}

// restoreLog always answers 200 with a success flag; the message is shown to
// the operator as-is.
func (h *Handler) restoreLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.logs.Restore(c.Request.Context(), id, actorName(c))
	if err != nil {
		_ = c.Error(err)
	}
	response.RespondOK(c, nethttp.StatusOK, result, nil)
}

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "dashboard failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, stats, nil)
}
