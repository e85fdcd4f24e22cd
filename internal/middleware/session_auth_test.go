package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"blogapi/internal/session"
)

func TestExtractTokenPrefersCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/blogs/myblogs", nil)
	c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	c.Request.Header.Set("Authorization", "Bearer header-token")
	require.Equal(t, "cookie-token", ExtractToken(c))
}

func TestExtractTokenBearerFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/blogs/myblogs", nil)
	c.Request.Header.Set("Authorization", "Bearer header-token")
	require.Equal(t, "header-token", ExtractToken(c))

	c.Request.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	require.Equal(t, "", ExtractToken(c))

	c.Request.Header.Del("Authorization")
	require.Equal(t, "", ExtractToken(c))
}

func TestSessionAuthRejectsInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/blogs/create", nil)
	SessionAuth(sessions)(c)
	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSessionAuthSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager()
	token := sessions.Create("user-1", "a@x.com")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/blogs/create", nil)
	c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	SessionAuth(sessions)(c)
	require.False(t, c.IsAborted())

	value, ok := c.Get(ContextIdentityKey)
	require.True(t, ok)
	ident := value.(session.Identity)
	require.Equal(t, "a@x.com", ident.Email)
	require.Equal(t, "user-1", ident.UserID)
}
