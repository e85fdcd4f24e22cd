package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogapi/internal/pkg/response"
	"blogapi/internal/session"
)

const (
	SessionCookieName  = "session_id"
	ContextIdentityKey = "identity"
	ContextTokenKey    = "session_token"
)

// SessionAuth resolves the presented session token and stores the identity on
// the gin context. Requests without a valid session are rejected with 401.
func SessionAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		ident, ok := sessions.Resolve(token)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "please log in")
			c.Abort()
			return
		}
		c.Set(ContextIdentityKey, ident)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// ExtractToken reads the session token from the cookie, falling back to
// a bearer Authorization header for non-browser clients.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
