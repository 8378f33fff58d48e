package health

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// NewHealthCheckHandler answers 200 while ready reports nil, and 503 with
// the reason otherwise. A nil ready is always healthy.
func NewHealthCheckHandler(ready func() error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ready != nil {
			if err := ready(); err != nil {
				return c.Status(http.StatusServiceUnavailable).SendString("Unhealthy: " + err.Error())
			}
		}
		return c.Status(http.StatusOK).SendString("Healthy")
	}
}
