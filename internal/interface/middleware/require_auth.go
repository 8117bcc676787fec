package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/seminar-registration-api/pkg/helpers"
	"github.com/oksasatya/seminar-registration-api/pkg/response"
	"github.com/oksasatya/seminar-registration-api/pkg/session"
)

// RequireAuth gates a route behind an authenticated operator session. It sets
// sessionID and adminUsername in the Gin context on success.
func RequireAuth(sessions session.Store, tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := helpers.SessionIDFromRequest(c, tokens)
		if sid == "" {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		sess, err := sessions.Get(c.Request.Context(), sid)
		if err != nil || !sess.IsAuthenticated {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.Set("sessionID", sid)
		c.Set("adminUsername", sess.Username)
		c.Next()
	}
}
