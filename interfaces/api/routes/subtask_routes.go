package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/infrastructure/session"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/interfaces/api/middleware"
	"todo-backend/pkg/config"
)

func SetupSubtaskRoutes(app *fiber.App, h *handlers.Handlers, sessions *session.Manager, cfg config.SessionConfig) {
	subtasks := app.Group("/subtasks")
	subtasks.Use(middleware.Protected(sessions, cfg))

	subtasks.Get("/:id", h.SubtaskHandler.Get)
	subtasks.Patch("/:id", h.SubtaskHandler.Update)
	subtasks.Delete("/:id", h.SubtaskHandler.Delete)
	subtasks.Post("/:id/complete", h.SubtaskHandler.Complete)
}
