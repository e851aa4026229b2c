package suporte

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registra as rotas do servidor de suporte.
func SetupRoutes(app *fiber.App, h *Handler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	grupo := app.Group("/support")
	grupo.Post("/add-contract-credentials", h.AddContractCredentials)
	grupo.Get("/connections/:username", h.Connections)
}
