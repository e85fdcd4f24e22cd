package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"blogapi/internal/middleware"
	appErr "blogapi/internal/pkg/errors"
	"blogapi/internal/pkg/response"
	"blogapi/internal/session"
)

func getIdentity(c *gin.Context) session.Identity {
	value, _ := c.Get(middleware.ContextIdentityKey)
	ident, _ := value.(session.Identity)
	return ident
}

func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case err == appErr.ErrUnauthorized:
		response.Error(c, http.StatusUnauthorized, "unauthorized", "please log in")
	case err == appErr.ErrInvalidCredentials:
		response.Error(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case err == appErr.ErrForbidden:
		response.Error(c, http.StatusForbidden, "forbidden", "you are not the author of this blog")
	case err == appErr.ErrNotFound:
		response.Error(c, http.StatusNotFound, "not_found", "not found")
	case err == appErr.ErrEmailTaken:
		response.Error(c, http.StatusBadRequest, "email_taken", "email already registered")
	case err == appErr.ErrInvalid:
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	default:
		requestID, _ := c.Get("request_id")
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.Any("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
