package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"blogapi/internal/handler"
	"blogapi/internal/middleware"
	"blogapi/internal/service"
	"blogapi/internal/session"
	"blogapi/test/testutil"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager()
	authService := service.NewAuthService(testutil.NewMemUserStore(), sessions)
	blogService := service.NewBlogService(testutil.NewMemBlogStore(), 0)

	deps := handler.RouterDeps{
		Auth:     handler.NewAuthHandler(authService),
		Blogs:    handler.NewBlogHandler(blogService),
		Sessions: sessions,
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	handler.RegisterRoutes(engine.Group("/api"), deps)
	return engine
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	return envelope.Data
}

func sessionCookies(t *testing.T, resp *httptest.ResponseRecorder) []*http.Cookie {
	t.Helper()
	cookies := resp.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func newAuthedRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// registerAndLogin provisions a user and returns its session cookies.
func registerAndLogin(t *testing.T, router http.Handler, email, pw string) []*http.Cookie {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{"email": email, "password": pw}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": pw}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	return sessionCookies(t, resp)
}
