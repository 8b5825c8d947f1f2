package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/infrastructure/session"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, sessions *session.Manager, cfg *config.Config) {
	SetupHealthRoutes(app, cfg)
	SetupOpenAPIRoutes(app, cfg)

	SetupAuthRoutes(app, h, sessions, cfg.Session)
	SetupTaskRoutes(app, h, sessions, cfg.Session)
	SetupSubtaskRoutes(app, h, sessions, cfg.Session)
}
