// Package auth gates the dashboard behind the shared league password and
// tracks issued sessions in memory.
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrSessionExpired  = errors.New("session expired or unknown")
)

// Session is one authenticated login.
type Session struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session is still live at the given time.
func (s Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// Manager validates the shared password and issues bearer tokens.
type Manager struct {
	password []byte
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]Session
}

// NewManager creates a session manager. ttl bounds how long a login lasts.
func NewManager(password string, ttl time.Duration) *Manager {
	return &Manager{
		password: []byte(password),
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Login checks the password in constant time and issues a new session.
func (m *Manager) Login(password string) (Session, error) {
	if subtle.ConstantTimeCompare(m.password, []byte(password)) != 1 {
		return Session{}, ErrInvalidPassword
	}

	now := time.Now()
	session := Session{
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sweepLocked(now)
	m.sessions[session.Token] = session
	m.mu.Unlock()

	return session, nil
}

// Verify resolves a bearer token to a live session.
func (m *Manager) Verify(token string) (Session, error) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[token]
	if !ok {
		return Session{}, ErrSessionExpired
	}
	if !session.Valid(now) {
		delete(m.sessions, token)
		return Session{}, ErrSessionExpired
	}
	return session, nil
}

// Logout discards a session. Unknown tokens are a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// sweepLocked drops expired sessions. Caller holds the mutex.
func (m *Manager) sweepLocked(now time.Time) {
	for token, session := range m.sessions {
		if !session.Valid(now) {
			delete(m.sessions, token)
		}
	}
}
