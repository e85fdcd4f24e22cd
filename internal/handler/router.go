package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/internal/middleware"
	"blogapi/internal/session"
)

type RouterDeps struct {
	Auth     *AuthHandler
	Blogs    *BlogHandler
	Sessions *session.Manager
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/auth/register", deps.Auth.Register)
	api.POST("/auth/login", deps.Auth.Login)
	api.POST("/auth/logout", deps.Auth.Logout)

	api.GET("/blogs", deps.Blogs.List)
	api.GET("/blogs/:id", deps.Blogs.Get)

	authGroup := api.Group("")
	authGroup.Use(middleware.SessionAuth(deps.Sessions))
	authGroup.GET("/auth/me", deps.Auth.Me)
	authGroup.POST("/blogs/create", deps.Blogs.Create)
	authGroup.GET("/blogs/myblogs", deps.Blogs.MyBlogs)
	authGroup.PUT("/blogs/:id", deps.Blogs.Update)
	authGroup.DELETE("/blogs/:id", deps.Blogs.Delete)
}
