package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"weather-task-tracker/internal/model"
)

// CookieName is the opaque session cookie carried by browsers.
const CookieName = "session_id"

// Manager holds server-side sessions keyed by opaque tokens.
// Sessions expire after the configured TTL; the LRU bound caps memory on
// abandoned sessions.
type Manager struct {
	store *expirable.LRU[string, model.Scope]
}

// NewManager creates a session manager. maxSessions bounds concurrent live
// sessions, ttl is the idle lifetime of a session.
func NewManager(maxSessions int, ttl time.Duration) *Manager {
	return &Manager{
		store: expirable.NewLRU[string, model.Scope](maxSessions, nil, ttl),
	}
}

// Create opens a new session for the user and returns the opaque token.
func (m *Manager) Create(userID string) string {
	token := uuid.NewString()
	m.store.Add(token, model.Scope{UserID: userID})
	return token
}

// Get resolves a token to its scope. ok is false for unknown or expired
// tokens.
func (m *Manager) Get(token string) (model.Scope, bool) {
	if token == "" {
		return model.Scope{}, false
	}
	return m.store.Get(token)
}

// Destroy removes a session. Destroying an unknown token is a no-op.
func (m *Manager) Destroy(token string) {
	m.store.Remove(token)
}
