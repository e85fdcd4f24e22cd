package service

import (
	"context"
	"strings"
	"time"

	"blogapi/internal/model"
	appErr "blogapi/internal/pkg/errors"
	"blogapi/internal/session"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type BlogStore interface {
	Create(ctx context.Context, blog *model.Blog) error
	GetByID(ctx context.Context, id string) (*model.Blog, error)
	Update(ctx context.Context, blog *model.Blog) (*model.Blog, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, skip, limit int64) ([]model.Blog, error)
	Count(ctx context.Context) (int64, error)
	ListByAuthorEmail(ctx context.Context, email string) ([]model.Blog, error)
}

type BlogService struct {
	blogs       BlogStore
	maxPageSize int
}

func NewBlogService(blogs BlogStore, maxPageSize int) *BlogService {
	if maxPageSize <= 0 {
		maxPageSize = MaxPageSize
	}
	return &BlogService{blogs: blogs, maxPageSize: maxPageSize}
}

type BlogPage struct {
	Blogs       []model.Blog `json:"blogs"`
	TotalPages  int64        `json:"totalPages"`
	CurrentPage int64        `json:"currentPage"`
	TotalItems  int64        `json:"totalItems"`
}

// Create stamps the post with the acting identity. The identity comes from
// the session middleware, never from the request body.
func (s *BlogService) Create(ctx context.Context, ident session.Identity, title, content, author string) (*model.Blog, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, appErr.ErrInvalid
	}
	if author == "" {
		author = ident.Email
	}
	blog := &model.Blog{
		Title:       title,
		Content:     content,
		Author:      author,
		AuthorEmail: ident.Email,
		CreatedAt:   time.Now(),
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*model.Blog, error) {
	return s.blogs.GetByID(ctx, id)
}

// List returns one page of posts, newest first. page is zero-indexed; size
// falls back to DefaultPageSize and is capped to keep result sets bounded.
func (s *BlogService) List(ctx context.Context, page, size int64) (*BlogPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > int64(s.maxPageSize) {
		size = int64(s.maxPageSize)
	}
	blogs, err := s.blogs.List(ctx, page*size, size)
	if err != nil {
		return nil, err
	}
	total, err := s.blogs.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}
	return &BlogPage{
		Blogs:       blogs,
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalItems:  total,
	}, nil
}

// Update rewrites title and content after the ownership check and refreshes
// created_at, which doubles as the display timestamp.
func (s *BlogService) Update(ctx context.Context, ident session.Identity, id, title, content string) (*model.Blog, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, appErr.ErrInvalid
	}
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog.AuthorEmail != ident.Email {
		return nil, appErr.ErrForbidden
	}
	blog.Title = title
	blog.Content = content
	blog.CreatedAt = time.Now()
	return s.blogs.Update(ctx, blog)
}

func (s *BlogService) Delete(ctx context.Context, ident session.Identity, id string) error {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if blog.AuthorEmail != ident.Email {
		return appErr.ErrForbidden
	}
	return s.blogs.Delete(ctx, id)
}

func (s *BlogService) ListByAuthor(ctx context.Context, ident session.Identity) ([]model.Blog, error) {
	return s.blogs.ListByAuthorEmail(ctx, ident.Email)
}
