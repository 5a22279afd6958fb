package session_test

import (
	"testing"
	"time"

	"weather-task-tracker/internal/session"
)

func TestManager(t *testing.T) {
	t.Run("Create And Get", func(t *testing.T) {
		m := session.NewManager(16, time.Minute)

		token := m.Create("user-1")
		if token == "" {
			t.Fatalf("expected non-empty token")
		}

		scope, ok := m.Get(token)
		if !ok {
			t.Fatalf("expected session to exist")
		}
		if scope.UserID != "user-1" {
			t.Errorf("expected user-1, got %s", scope.UserID)
		}
	})

	t.Run("Tokens Are Unique", func(t *testing.T) {
		m := session.NewManager(16, time.Minute)
		if m.Create("u") == m.Create("u") {
			t.Errorf("expected distinct tokens per session")
		}
	})

	t.Run("Unknown Token", func(t *testing.T) {
		m := session.NewManager(16, time.Minute)
		if _, ok := m.Get("nope"); ok {
			t.Errorf("expected miss for unknown token")
		}
		if _, ok := m.Get(""); ok {
			t.Errorf("expected miss for empty token")
		}
	})

	t.Run("Destroy", func(t *testing.T) {
		m := session.NewManager(16, time.Minute)
		token := m.Create("user-1")
		m.Destroy(token)
		if _, ok := m.Get(token); ok {
			t.Errorf("expected session to be gone after destroy")
		}
		m.Destroy(token) // no-op
	})

	t.Run("Expiry", func(t *testing.T) {
		m := session.NewManager(16, 20*time.Millisecond)
		token := m.Create("user-1")
		time.Sleep(50 * time.Millisecond)
		if _, ok := m.Get(token); ok {
			t.Errorf("expected session to expire")
		}
	})
}
