package middleware

import (
	"time"

	"mindflow/internal/config"

	"github.com/gofiber/fiber/v2"
)

// AppConfig builds the fiber settings for the API server, including how the client IP
// is resolved for rate limiting.
func AppConfig(server config.ServerConfig) fiber.Config {
	cfg := fiber.Config{
		ReadTimeout:  server.ReadTimeout,
		WriteTimeout: server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: ErrorHandler(),
	}
	if server.ProxyHeader != "" {
		cfg.ProxyHeader = server.ProxyHeader
		// Picks the first valid address out of a forwarded list.
		cfg.EnableIPValidation = true
		if len(server.TrustedProxies) > 0 {
			cfg.EnableTrustedProxyCheck = true
			cfg.TrustedProxies = server.TrustedProxies
		}
	}
	return cfg
}
