package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound covers both unknown and expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side state an opaque cookie id maps to.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's lifetime has passed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionStore persists sessions. Implementations: Redis (TTL-backed) and
// in-memory (single node, swept periodically).
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired purges expired entries; a no-op where the backend
	// expires keys itself.
	DeleteExpired(ctx context.Context) (int64, error)
}
