package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func loggerTestRouter(out *bytes.Buffer, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.JSONFormatter{})
	router := gin.New()
	router.Use(Logger(log))
	router.GET("/ping", append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})...)
	return router
}

func TestLogger_IncludesActorWhenAuthenticated(t *testing.T) {
	var out bytes.Buffer
	router := loggerTestRouter(&out, func(c *gin.Context) {
		c.Set(ActorNameCtx, "Budi")
		c.Set(ActorRoleCtx, "manager")
		c.Next()
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Contains(t, out.String(), `"actor":"Budi"`)
	assert.Contains(t, out.String(), `"actor_role":"manager"`)
}

func TestLogger_OmitsActorWhenAnonymous(t *testing.T) {
	var out bytes.Buffer
	router := loggerTestRouter(&out)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Contains(t, out.String(), `"path":"/ping"`)
	assert.NotContains(t, out.String(), `"actor"`)
}
