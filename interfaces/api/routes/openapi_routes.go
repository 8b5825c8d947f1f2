package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/pkg/config"
	"todo-backend/pkg/openapi"
)

// SetupOpenAPIRoutes serves the generated API description. The same
// document is written to disk by cmd/openapi.
func SetupOpenAPIRoutes(app *fiber.App, cfg *config.Config) {
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc := openapi.BuildDocument(cfg.App.Name)
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		data, err := doc.MarshalJSON()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render OpenAPI document")
		}
		return c.Send(data)
	})
}
