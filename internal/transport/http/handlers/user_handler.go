package handlers

import (
	nethttp "net/http"
	"strconv"

	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/Blawness/pkp-studio/internal/transport/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=admin manager user"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Create(c.Request.Context(), service.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	}, actorName(c))
	if err != nil {
		respondServiceError(c, err, "create failed")
		return
	}
	response.RespondOK(c, nethttp.StatusCreated, user, nil)
}

func (h *Handler) getUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, user, nil)
}

type updateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin manager user"`
	// Empty password keeps the current one.
	Password string `json:"password" binding:"omitempty,min=8"`
}

func (h *Handler) updateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, service.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	}, actorName(c))
	if err != nil {
		respondServiceError(c, err, "update failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, user, nil)
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, nethttp.StatusBadRequest, "invalid id")
		return
	}

	if err := h.users.Delete(c.Request.Context(), id, actorName(c)); err != nil {
		respondServiceError(c, err, "delete failed")
		return
	}
	response.RespondOK(c, nethttp.StatusOK, gin.H{"status": "deleted"}, nil)
}

func (h *Handler) listUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	cursor := c.Query("cursor")

	users, nextCursor, err := h.users.List(c.Request.Context(), limit, cursor)
	if err != nil {
		respondServiceError(c, err, "list failed")
		return
	}
	meta := &response.Meta{NextCursor: nextCursor}
	response.RespondOK(c, nethttp.StatusOK, users, meta)
}
