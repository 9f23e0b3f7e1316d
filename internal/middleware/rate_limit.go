package middleware

import (
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RateLimit rejects a client once it exceeds the limiter's budget for scope.
// Clients are identified by IP address.
func RateLimit(limiter service.RateLimiter, scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := limiter.Allow(c.UserContext(), scope, c.IP()); err != nil {
			return err
		}
		return c.Next()
	}
}
