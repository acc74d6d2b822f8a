package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/config"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/handler"
	"github.com/tritiya141-ux/project-ai-interview-system/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	PositionHandler *handler.PositionHandler
	QuestionHandler *handler.QuestionHandler
	GenerateLimiter fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.PositionHandler != nil {
		deps.PositionHandler.Register(api.Group("/positions"))
	}

	if deps.QuestionHandler != nil {
		deps.QuestionHandler.Register(api.Group("/questions"), deps.GenerateLimiter)
	}
}
