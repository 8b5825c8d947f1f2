package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todo-backend/domain/models"
	"todo-backend/domain/ports"
	"todo-backend/pkg/config"
)

// Manager issues, resolves and destroys sessions against the configured
// store. Cookie handling stays in the HTTP layer; the manager only deals in
// opaque session ids.
type Manager struct {
	store ports.SessionStore
	ttl   time.Duration
}

func NewManager(store ports.SessionStore, cfg config.SessionConfig) *Manager {
	return &Manager{
		store: store,
		ttl:   time.Duration(cfg.TTLHours) * time.Hour,
	}
}

func (m *Manager) Issue(ctx context.Context, user *models.User) (*ports.Session, error) {
	now := time.Now().UTC()
	session := &ports.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (m *Manager) Load(ctx context.Context, id string) (*ports.Session, error) {
	if id == "" {
		return nil, ports.ErrSessionNotFound
	}
	return m.store.Get(ctx, id)
}

func (m *Manager) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// TTLSeconds is the cookie MaxAge matching the server-side lifetime.
func (m *Manager) TTLSeconds() int {
	return int(m.ttl / time.Second)
}
