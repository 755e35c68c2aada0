package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heelmeals/nutritrack/internal/infrastructure/session"
	"github.com/heelmeals/nutritrack/pkg/response"
)

// CtxUserIDKey is where the gate puts the resolved user id.
const CtxUserIDKey = "userID"

// Auth is the authorization gate applied to every protected route. It reads
// the session cookie, resolves the opaque token, and aborts with a 401 JSON
// body before any handler logic runs. It knows nothing about the handler it
// guards.
func Auth(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "not authenticated", nil)
			c.Abort()
			return
		}
		userID, err := store.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				response.Error[any](c, http.StatusUnauthorized, "not authenticated", nil)
			} else {
				// Session store outage is a server fault, not the client's.
				response.Error[any](c, http.StatusInternalServerError, "session lookup failed", nil)
			}
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}
