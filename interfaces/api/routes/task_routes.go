package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/infrastructure/session"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/interfaces/api/middleware"
	"todo-backend/pkg/config"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers, sessions *session.Manager, cfg config.SessionConfig) {
	tasks := app.Group("/tasks")
	tasks.Use(middleware.Protected(sessions, cfg))

	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Patch("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
	tasks.Post("/:id/complete", h.TaskHandler.CompleteTask)

	// subtasks nested under their parent task
	tasks.Get("/:id/subtasks", h.SubtaskHandler.ListByTask)
	tasks.Post("/:id/subtasks", h.SubtaskHandler.Create)
}
