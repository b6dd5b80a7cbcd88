package middleware

import (
	nethttp "net/http"
	"strings"

	"github.com/Blawness/pkp-studio/internal/infra/security"
	"github.com/Blawness/pkp-studio/internal/transport/http/response"
	"github.com/gin-gonic/gin"
)

const (
	ActorNameCtx = "actor_name"
	ActorRoleCtx = "actor_role"
	ActorIDCtx   = "actor_id"
)

// Auth validates the bearer token and stores the actor's identity in the
// request context. The actor name is what mutation services write into the
// activity log.
func Auth(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.RespondError(c, nethttp.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.RespondError(c, nethttp.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Set(ActorNameCtx, claims.Name)
		c.Set(ActorRoleCtx, claims.Role)
		c.Set(ActorIDCtx, claims.Subject)
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Restore and user
// management are limited to admin and manager.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(ActorRoleCtx)]; !ok {
			response.RespondError(c, nethttp.StatusForbidden, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
