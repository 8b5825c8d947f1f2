package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/pkg/config"
)

func SetupHealthRoutes(app *fiber.App, cfg *config.Config) {
	health := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Healthy",
			"service": cfg.App.Name,
		})
	}

	app.Get("/", health)
	app.Get("/health", health)
}
