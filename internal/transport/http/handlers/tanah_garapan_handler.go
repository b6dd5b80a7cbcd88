package handlers

import (
	nethttp "net/http"
	"strconv"

	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/transport/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type tanahGarapanRequest struct {
	LetakTanah                  string `json:"letakTanah" binding:"required"`
	NamaPemegangHak             string `json:"namaPemegangHak" binding:"required"`
	LetterC                     string `json:"letterC" binding:"required"`
	NomorSuratKeteranganGarapan string `json:"nomorSuratKeteranganGarapan" binding:"required"`
	Luas                        int    `json:"luas" binding:"required,gt=0"`
	Keterangan                  string `json:"keterangan"`
}

func (r tanahGarapanRequest) toInput() service.TanahGarapanInput {
	return service.TanahGarapanInput{
		LetakTanah:                  r.LetakTanah,
		NamaPemegangHak:             r.NamaPemegangHak,
		LetterC:                     r.LetterC,
		NomorSuratKeteranganGarapan: r.NomorSuratKeteranganGarapan,
		Luas:                        r.Luas,
		Keterangan:                  r.Keterangan,
	}
}

func (h *Handler) createTanahGarapan(c *gin.Context) {
	var req tanahGarapanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.tanahGarapan.Create(c.Request.Context(), req.toInput(), actorName(c))
	if err != nil {
		respondServiceError(c, err, "create failed")
		return
	}
	response.RespondOK(c, nethttp.StatusCreated, entry, nil)
}

func (h *Handler) getTanahGarapan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	entry, err := h.tanahGarapan.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, entry, nil)
}

func (h *Handler) updateTanahGarapan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}
	var req tanahGarapanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.tanahGarapan.Update(c.Request.Context(), id, req.toInput(), actorName(c))
	if err != nil {
		respondServiceError(c, err, "update failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, entry, nil)
}

func (h *Handler) deleteTanahGarapan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	if err := h.tanahGarapan.Delete(c.Request.Context(), id, actorName(c)); err != nil {
		respondServiceError(c, err, "delete failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, gin.H{"status": "deleted"}, nil)
}

func (h *Handler) listTanahGarapan(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	cursor := c.Query("cursor")

	entries, nextCursor, err := h.tanahGarapan.List(c.Request.Context(), limit, cursor)
	if err != nil {
		respondServiceError(c, err, "list failed")
		return
	}
	meta := &response.Meta{NextCursor: nextCursor}
	response.RespondOK(c, nethttp.StatusOK, entries, meta)
}

func (h *Handler) listTanahGarapanByLetakTanah(c *gin.Context) {
	letakTanah := c.Param("letakTanah")
	if letakTanah == "" {
		response.RespondError(c, nethttp.StatusBadRequest, "letakTanah is required")
		return
	}

	entries, err := h.tanahGarapan.ListByLetakTanah(c.Request.Context(), letakTanah)
	if err != nil {
		respondServiceError(c, err, "list failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, entries, nil)
}
