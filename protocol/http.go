package protocol

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/raksitnongbua/office-bot/internal/core/handler/check"
	"github.com/raksitnongbua/office-bot/internal/core/handler/health"
	"go.uber.org/zap"
)

// NewApp wires the HTTP trigger: a health check backed by ready and an
// endpoint that runs one status check per POST.
func NewApp(runner check.Runner, today func() string, ready func() error, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(cors.New())
	app.Get("/health", health.NewHealthCheckHandler(ready))
	api := app.Group("/api")

	v1 := api.Group("v1")
	v1.Get("/", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).SendString("Api v1 is ready!")
	})
	v1.Post("/check", check.NewCheckHandler(runner, today, logger))

	return app
}

func ServeREST(addr string, runner check.Runner, today func() string, ready func() error, logger *zap.Logger) error {
	app := NewApp(runner, today, ready, logger)
	logger.Info("listening", zap.String("addr", addr))
	return app.Listen(addr)
}
