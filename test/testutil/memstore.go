// Package testutil contains in-memory store fakes and the mongo test opener.
// The fakes mirror the repo layer's contract, including atomic email
// uniqueness, so service and handler tests run without a database.
package testutil

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogapi/internal/model"
	appErr "blogapi/internal/pkg/errors"
)

type MemUserStore struct {
	mu      sync.Mutex
	byEmail map[string]model.User
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{byEmail: make(map[string]model.User)}
}

func (s *MemUserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return appErr.ErrEmailTaken
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.byEmail[user.Email] = *user
	return nil
}

func (s *MemUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byEmail[email]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return &user, nil
}

type MemBlogStore struct {
	mu    sync.Mutex
	blogs map[string]model.Blog
}

func NewMemBlogStore() *MemBlogStore {
	return &MemBlogStore{blogs: make(map[string]model.Blog)}
}

func (s *MemBlogStore) Create(ctx context.Context, blog *model.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	s.blogs[blog.ID.Hex()] = *blog
	return nil
}

func (s *MemBlogStore) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blog, ok := s.blogs[id]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return &blog, nil
}

func (s *MemBlogStore) Update(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.blogs[blog.ID.Hex()]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	stored.Title = blog.Title
	stored.Content = blog.Content
	stored.CreatedAt = blog.CreatedAt
	s.blogs[blog.ID.Hex()] = stored
	return &stored, nil
}

func (s *MemBlogStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogs[id]; !ok {
		return appErr.ErrNotFound
	}
	delete(s.blogs, id)
	return nil
}

func (s *MemBlogStore) List(ctx context.Context, skip, limit int64) ([]model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.sortedLocked()
	if skip >= int64(len(all)) {
		return []model.Blog{}, nil
	}
	all = all[skip:]
	if limit > 0 && limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (s *MemBlogStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.blogs)), nil
}

func (s *MemBlogStore) ListByAuthorEmail(ctx context.Context, email string) ([]model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Blog, 0)
	for _, blog := range s.sortedLocked() {
		if blog.AuthorEmail == email {
			result = append(result, blog)
		}
	}
	return result, nil
}

// sortedLocked returns all blogs newest first, tie-broken by id so the order
// is stable when timestamps collide.
func (s *MemBlogStore) sortedLocked() []model.Blog {
	all := make([]model.Blog, 0, len(s.blogs))
	for _, blog := range s.blogs {
		all = append(all, blog)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.Hex() > all[j].ID.Hex()
	})
	return all
}
