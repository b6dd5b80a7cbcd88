package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/Blawness/pkp-studio/internal/transport/http/response"
	"github.com/Blawness/pkp-studio/internal/usecase"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.RespondError(c, nethttp.StatusUnauthorized, "invalid email or password")
			return
		}
		response.RespondError(c, nethttp.StatusInternalServerError, "login failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, gin.H{"user": user, "token": token}, nil)
}
