package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/ports"
)

var ErrNoSession = errors.New("no session in context")

const sessionLocalsKey = "session"

// SetSessionLocal stashes the resolved session for handlers downstream.
func SetSessionLocal(c *fiber.Ctx, session *ports.Session) {
	c.Locals(sessionLocalsKey, session)
}

// GetSessionFromContext returns the session placed by the auth middleware.
func GetSessionFromContext(c *fiber.Ctx) (*ports.Session, error) {
	session, ok := c.Locals(sessionLocalsKey).(*ports.Session)
	if !ok || session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}
