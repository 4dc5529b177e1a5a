package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/security"
)

// JWTAuth guards a route group with bearer-token auth. On success the
// authenticated user id is available as c.Locals("user_id").
func JWTAuth(tokens *security.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			return unauthorized(c)
		}
		userID, err := tokens.Parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			return unauthorized(c)
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error_code": "UNAUTHORIZED",
		"message":    "authorization required",
	})
}
