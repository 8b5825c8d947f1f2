package redis

import (
	"context"
	"time"

	"todo-backend/domain/ports"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps sessions in Redis; key TTL handles expiry so
// DeleteExpired is a no-op.
type SessionStore struct {
	client *Client
}

func NewSessionStore(client *Client) ports.SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, session *ports.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.SetJSON(ctx, sessionKeyPrefix+session.ID, session, ttl)
}

func (s *SessionStore) Get(ctx context.Context, id string) (*ports.Session, error) {
	var session ports.Session
	err := s.client.GetJSON(ctx, sessionKeyPrefix+id, &session)
	if err != nil {
		if IsNil(err) {
			return nil, ports.ErrSessionNotFound
		}
		return nil, err
	}
	if session.Expired() {
		return nil, ports.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id)
}

func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
