package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// SecurityHeaders sets the hardened response headers. apiURL, when set, is
// allowed as a connect-src.
func SecurityHeaders(apiURL string) fiber.Handler {
	connect := "'self'"
	if apiURL != "" {
		connect += " " + apiURL
	}
	csp := strings.Join([]string{
		"default-src 'self'",
		"script-src 'self' 'unsafe-inline'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"connect-src " + connect,
	}, "; ")

	return helmet.New(helmet.Config{
		ContentSecurityPolicy:     csp,
		CrossOriginResourcePolicy: "same-site",
	})
}

// CORS allows GET and POST from the given origins only, with credentials.
func CORS(origins []string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     strings.Join([]string{fiber.MethodGet, fiber.MethodPost}, ","),
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	})
}

// RateLimit allows max requests per client IP within window. onLimit writes the
// rejection response.
func RateLimit(max int, window time.Duration, onLimit fiber.Handler) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   window,
		LimitReached: onLimit,
		Next: func(c *fiber.Ctx) bool {
			// Health checks and scrapes must not consume the budget.
			switch c.Path() {
			case "/healthz", "/metrics":
				return true
			}
			return false
		},
	})
}
