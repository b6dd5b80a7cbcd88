package handlers

import (
	"errors"
	nethttp "net/http"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/transport/http/middleware"
	"github.com/Blawness/pkp-studio/internal/transport/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(middleware.ActorIDCtx))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) checkIn(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.RespondError(c, nethttp.StatusUnauthorized, "invalid subject")
		return
	}

	record, err := h.attendance.CheckIn(c.Request.Context(), userID, actorName(c))
	if err != nil {
		if repository.IsConflict(err) {
			response.RespondError(c, nethttp.StatusConflict, "user has already checked in today")
			return
		}
		respondServiceError(c, err, "check-in failed")
		return
	}
	response.RespondOK(c, nethttp.StatusCreated, record, nil)
}

func (h *Handler) checkOut(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	record, err := h.attendance.CheckOut(c.Request.Context(), id, actorName(c))
	if err != nil {
		respondServiceError(c, err, "check-out failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, record, nil)
}

func (h *Handler) todayAttendance(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.RespondError(c, nethttp.StatusUnauthorized, "invalid subject")
		return
	}

	record, err := h.attendance.TodayForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.RespondOK(c, nethttp.StatusOK, nil, nil)
			return
		}
		respondServiceError(c, err, "get failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, record, nil)
}

func (h *Handler) attendanceHistory(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.RespondError(c, nethttp.StatusUnauthorized, "invalid subject")
		return
	}

	records, err := h.attendance.HistoryForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "list failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, records, nil)
}

func (h *Handler) listAttendance(c *gin.Context) {
	var filter repository.AttendanceFilter
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, nethttp.StatusBadRequest, "invalid user_id")
			return
		}
		filter.UserID = id
	}
	if start, end := c.Query("start_date"), c.Query("end_date"); start != "" && end != "" {
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			response.RespondError(c, nethttp.StatusBadRequest, "invalid start_date")
			return
		}
		endDate, err := time.Parse("2006-01-02", end)
		if err != nil {
			response.RespondError(c, nethttp.StatusBadRequest, "invalid end_date")
			return
		}
		filter.StartDate = startDate
		filter.EndDate = endDate.Add(24*time.Hour - time.Nanosecond)
	}

	records, err := h.attendance.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "list failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, records, nil)
}

type updateAttendanceRequest struct {
	CheckIn       *time.Time `json:"checkIn"`
	CheckOut      *time.Time `json:"checkOut"`
	ClearCheckOut bool       `json:"clearCheckOut"`
}

func (h *Handler) updateAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}
	var req updateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
		return
	}

	record, err := h.attendance.Update(c.Request.Context(), id, service.AttendanceUpdate{
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		ClearCheckOut: req.ClearCheckOut,
	}, actorName(c))
	if err != nil {
		respondServiceError(c, err, "update failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, record, nil)
}

func (h *Handler) deleteAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	if err := h.attendance.Delete(c.Request.Context(), id, actorName(c)); err != nil {
		respondServiceError(c, err, "delete failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, gin.H{"status": "deleted"}, nil)
}
