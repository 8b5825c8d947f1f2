package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/ports"
	"todo-backend/infrastructure/session"
	"todo-backend/pkg/config"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

// Protected resolves the session cookie and rejects the request when no
// valid session exists. The resolved session lands in the request locals.
func Protected(manager *session.Manager, cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(cfg.CookieName)
		sess, err := manager.Load(c.UserContext(), sessionID)
		if err != nil {
			if !errors.Is(err, ports.ErrSessionNotFound) {
				logger.ErrorContext(c.UserContext(), "Session lookup failed", "error", err)
				return utils.InternalServerErrorResponse(c)
			}
			return utils.UnauthorizedResponse(c, "Not authenticated")
		}

		utils.SetSessionLocal(c, sess)
		return c.Next()
	}
}

// Optional resolves the session when present but lets anonymous requests
// through. Used by /auth/me, which answers 200 with a null user.
func Optional(manager *session.Manager, cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(cfg.CookieName)
		if sess, err := manager.Load(c.UserContext(), sessionID); err == nil {
			utils.SetSessionLocal(c, sess)
		}
		return c.Next()
	}
}

// SetSessionCookie writes the session cookie with the configured attributes.
func SetSessionCookie(c *fiber.Ctx, cfg config.SessionConfig, sessionID string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    sessionID,
		MaxAge:   maxAge,
		HTTPOnly: cfg.CookieHTTPOnly,
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
		Path:     "/",
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *fiber.Ctx, cfg config.SessionConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: cfg.CookieHTTPOnly,
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
		Path:     "/",
	})
}
