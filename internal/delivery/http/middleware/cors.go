package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// NewCORS allows any origin, method and header with credentials. The
// request origin is reflected because a literal "*" cannot be combined
// with credentials.
func NewCORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
			fiber.MethodOptions,
		},
		AllowCredentials: true,
	})
}
