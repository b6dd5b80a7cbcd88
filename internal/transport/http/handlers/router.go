package handlers

import (
	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *Handler
}

func NewRouter(handler *Handler) *Router {
	return &Router{handler: handler}
}

func (r *Router) RegisterRoutes(engine *gin.Engine, auth gin.HandlerFunc) {
	engine.GET("/healthz", r.handler.health)

	api := engine.Group("/api")
	api.POST("/auth/login", r.handler.login)

	authed := api.Group("", auth)
	privileged := middleware.RequireRoles(entity.RoleAdmin, entity.RoleManager)

	certificates := authed.Group("/certificates")
	certificates.POST("", r.handler.createCertificate)
	certificates.GET("", r.handler.listCertificates)
	certificates.GET("/:id", r.handler.getCertificate)
	certificates.PATCH("/:id", r.handler.updateCertificate)
	certificates.DELETE("/:id", r.handler.deleteCertificate)

	users := authed.Group("/users", privileged)
	users.POST("", r.handler.createUser)
	users.GET("", r.handler.listUsers)
	users.GET("/:id", r.handler.getUser)
	users.PATCH("/:id", r.handler.updateUser)
	users.DELETE("/:id", r.handler.deleteUser)

	garapan := authed.Group("/tanah-garapan")
	garapan.POST("", r.handler.createTanahGarapan)
	garapan.GET("", r.handler.listTanahGarapan)
	garapan.GET("/group/:letakTanah", r.handler.listTanahGarapanByLetakTanah)
	garapan.GET("/:id", r.handler.getTanahGarapan)
	garapan.PATCH("/:id", r.handler.updateTanahGarapan)
	garapan.DELETE("/:id", r.handler.deleteTanahGarapan)

	attendance := authed.Group("/attendance")
	attendance.POST("/check-in", r.handler.checkIn)
	attendance.POST("/check-out/:id", r.handler.checkOut)
	attendance.GET("/today", r.handler.todayAttendance)
	attendance.GET("/history", r.handler.attendanceHistory)
	attendance.GET("", privileged, r.handler.listAttendance)
	attendance.PATCH("/:id", privileged, r.handler.updateAttendance)
	attendance.DELETE("/:id", privileged, r.handler.deleteAttendance)

	logs := authed.Group("/logs")
	logs.GET("", r.handler.listLogs)
	logs.POST("/:id/restore", privileged, r.handler.restoreLog)

	authed.GET("/dashboard", r.handler.dashboardStats)
}
