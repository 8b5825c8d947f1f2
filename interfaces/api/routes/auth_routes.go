package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/infrastructure/session"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/interfaces/api/middleware"
	"todo-backend/pkg/config"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers, sessions *session.Manager, cfg config.SessionConfig) {
	auth := app.Group("/auth")
	auth.Post("/login", h.AuthHandler.Login)
	auth.Post("/logout", h.AuthHandler.Logout)
	// /me answers 200 with a null user when anonymous
	auth.Get("/me", middleware.Optional(sessions, cfg), h.AuthHandler.Me)
}
