package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/internal/middleware"
	"blogapi/internal/pkg/response"
	"blogapi/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	// The password hash never leaves the server; model.User redacts it via
	// its json tag.
	response.Success(c, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	// Session cookie without Max-Age: it lives until logout or a newer login.
	c.SetCookie(middleware.SessionCookieName, token, 0, "/", "", false, true)
	response.Success(c, gin.H{"email": user.Email, "token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(middleware.ExtractToken(c))
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, gin.H{"ok": true})
}

// Me reports the identity bound to the current session. Useful as a login
// probe for the frontend.
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, getIdentity(c))
}
