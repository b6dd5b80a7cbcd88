package handlers

import (
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/transport/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type certificateRequest struct {
	Kode               string   `json:"kode" binding:"required"`
	NamaPemegang       []string `json:"nama_pemegang" binding:"required,min=1"`
	SuratHak           string   `json:"surat_hak" binding:"required"`
	NoSertifikat       string   `json:"no_sertifikat" binding:"required"`
	LokasiTanah        string   `json:"lokasi_tanah" binding:"required"`
	LuasM2             int      `json:"luas_m2" binding:"required,gt=0"`
	TglTerbit          string   `json:"tgl_terbit" binding:"required,datetime=2006-01-02"`
	SuratUkur          string   `json:"surat_ukur" binding:"required"`
	NIB                string   `json:"nib" binding:"required"`
	PendaftaranPertama string   `json:"pendaftaran_pertama" binding:"required,datetime=2006-01-02"`
}

func (r certificateRequest) toInput() service.CertificateInput {
	tglTerbit, _ := time.Parse("2006-01-02", r.TglTerbit)
	pendaftaran, _ := time.Parse("2006-01-02", r.PendaftaranPertama)
	return service.CertificateInput{
		Kode:               r.Kode,
		NamaPemegang:       r.NamaPemegang,
		SuratHak:           r.SuratHak,
		NoSertifikat:       r.NoSertifikat,
		LokasiTanah:        r.LokasiTanah,
		LuasM2:             r.LuasM2,
		TglTerbit:          tglTerbit,
		SuratUkur:          r.SuratUkur,
		NIB:                r.NIB,
		PendaftaranPertama: pendaftaran,
	}
}

func (h *Handler) createCertificate(c *gin.Context) {
	var req certificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
		return
	}

	cert, err := h.certificates.Create(c.Request.Context(), req.toInput(), actorName(c))
	if err != nil {
		respondServiceError(c, err, "create failed")
		return
	}
	response.RespondOK(c, nethttp.StatusCreated, cert, nil)
}

func (h *Handler) getCertificate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	cert, err := h.certificates.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, cert, nil)
}

func (h *Handler) updateCertificate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}
	var req certificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
		return
	}

	cert, err := h.certificates.Update(c.Request.Context(), id, req.toInput(), actorName(c))
	if err != nil {
		respondServiceError(c, err, "update failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, cert, nil)
}

func (h *Handler) deleteCertificate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	if err := h.certificates.Delete(c.Request.Context(), id, actorName(c)); err != nil {
		respondServiceError(c, err, "delete failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, gin.H{"status": "deleted"}, nil)
}

func (h *Handler) listCertificates(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	cursor := c.Query("cursor")

	certs, nextCursor, err := h.certificates.List(c.Request.Context(), limit, cursor)
	if err != nil {
		respondServiceError(c, err, "list failed")
		return
	}
	meta := &response.Meta{NextCursor: nextCursor}
	response.RespondOK(c, nethttp.StatusOK, certs, meta)
}
