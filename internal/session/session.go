// Package session holds the admin's authentication state between commands.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/models"
)

// Session is what a successful login or registration leaves behind.
type Session struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

// Store persists a session. Load returns ErrNotFound when there is none.
type Store interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

var ErrNotFound = errors.New("session not found")

// Manager is the single owner of the session. It moves between the
// unauthenticated and authenticated states only through Begin and End.
type Manager struct {
	store Store
	now   func() time.Time

	mu      sync.Mutex
	current *Session
	loaded  bool
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Begin records a new session after login or registration.
func (m *Manager) Begin(s Session) error {
	if s.Token == "" {
		return errors.New("session token is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(&s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	m.current = &s
	m.loaded = true
	return nil
}

// End discards the session, on logout or when the server rejects the token.
func (m *Manager) End() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.loaded = true
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns the live session. An expired token ends the session and
// counts as no session.
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		s, err := m.store.Load()
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("load session: %w", err)
		default:
			m.current = s
		}
		m.loaded = true
	}
	if m.current == nil {
		return nil, api.ErrNoSession
	}
	if Expired(m.current.Token, m.now()) {
		m.current = nil
		if err := m.store.Clear(); err != nil {
			return nil, fmt.Errorf("clear expired session: %w", err)
		}
		return nil, api.ErrNoSession
	}
	s := *m.current
	return &s, nil
}

// Token implements api.TokenSource.
func (m *Manager) Token() (string, error) {
	s, err := m.Current()
	if err != nil {
		return "", err
	}
	return s.Token, nil
}

// Expired reports whether the token carries an exp claim in the past. The
// signature is not checked here; the server stays the authority on validity.
// Tokens that are not JWTs, or carry no exp, never expire locally.
func Expired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
