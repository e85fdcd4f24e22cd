package service

import (
	"context"
	"strings"
	"time"

	"blogapi/internal/model"
	appErr "blogapi/internal/pkg/errors"
	"blogapi/internal/pkg/password"
	"blogapi/internal/session"
)

// UserStore is the credential store consumed by AuthService. Create must be
// atomic with respect to email uniqueness: a duplicate insert fails with
// ErrEmailTaken instead of silently winning.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	users    UserStore
	sessions *session.Manager
}

func NewAuthService(users UserStore, sessions *session.Manager) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

func (s *AuthService) Register(ctx context.Context, email, plainPassword string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") || plainPassword == "" {
		return nil, appErr.ErrInvalid
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and establishes a session. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, *model.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, appErr.ErrInvalidCredentials
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return "", nil, appErr.ErrInvalidCredentials
	}
	token := s.sessions.Create(user.ID.Hex(), user.Email)
	return token, user, nil
}

// Logout tears down the session behind token. Always succeeds.
func (s *AuthService) Logout(token string) {
	s.sessions.Destroy(token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
