package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/campfirehq/campfire/internal/pkg/env"
	"github.com/gofiber/fiber/v2"
)

const ServiceTokenHeader = "X-Service-Token"

// RequireServiceToken guards internal endpoints (notifications, webhook
// audit inspection) with a static token from the environment. An unset
// token disables the surface entirely rather than leaving it open.
func RequireServiceToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		expected := env.GetEnv("SERVICE_API_TOKEN", "")
		if expected == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "internal API disabled",
			})
		}

		got := strings.TrimSpace(c.Get(ServiceTokenHeader))
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid service token",
			})
		}
		return c.Next()
	}
}
