package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapi/internal/pkg/response"
	"blogapi/internal/service"
)

type BlogHandler struct {
	blogs *service.BlogService
}

func NewBlogHandler(blogs *service.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

type blogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	blog, err := h.blogs.Create(c.Request.Context(), getIdentity(c), req.Title, req.Content, req.Author)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"blog": blog})
}

func (h *BlogHandler) List(c *gin.Context) {
	page := parseInt64(c.Query("page"), 0)
	size := parseInt64(c.Query("size"), 0)
	result, err := h.blogs.List(c.Request.Context(), page, size)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"blog": blog})
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	blog, err := h.blogs.Update(c.Request.Context(), getIdentity(c), c.Param("id"), req.Title, req.Content)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"blog": blog})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogs.Delete(c.Request.Context(), getIdentity(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}

func (h *BlogHandler) MyBlogs(c *gin.Context) {
	blogs, err := h.blogs.ListByAuthor(c.Request.Context(), getIdentity(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"blogs": blogs})
}

func parseInt64(value string, fallback int64) int64 {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
