// Package session holds the process-wide session state: a token to identity
// mapping with at most one live session per user. Sessions never expire by
// time; they die on logout or when a newer login for the same user replaces
// them.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const tokenBytes = 32

type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type Session struct {
	Token     string
	Identity  Identity
	CreatedAt time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
	byUser   map[string]string
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]Session),
		byUser:   make(map[string]string),
	}
}

// Create issues a fresh token bound to the given identity. Any previous token
// of the same user is dropped in the same critical section, so the old and the
// new session are never valid at the same time.
func (m *Manager) Create(userID, email string) string {
	token := newToken()
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.byUser[userID]; ok {
		delete(m.sessions, prev)
	}
	m.sessions[token] = Session{
		Token:     token,
		Identity:  Identity{UserID: userID, Email: email},
		CreatedAt: time.Now(),
	}
	m.byUser[userID] = token
	return token
}

// Resolve returns the identity bound to token, if any. A miss is not an
// error; it means "not authenticated".
func (m *Manager) Resolve(token string) (Identity, bool) {
	if token == "" {
		return Identity{}, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[token]
	if !ok {
		return Identity{}, false
	}
	return sess.Identity, true
}

// Destroy invalidates token. Destroying an unknown token is a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[token]
	if !ok {
		return
	}
	delete(m.sessions, token)
	if m.byUser[sess.Identity.UserID] == token {
		delete(m.byUser, sess.Identity.UserID)
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func newToken() string {
	buf := make([]byte, tokenBytes)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
