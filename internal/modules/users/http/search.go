package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/service"
)

// SearchUsersHandler lists users whose name matches ?name=, excluding the
// caller. Without the query parameter it lists everyone.
func SearchUsersHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		caller, err := svc.Caller(c.Context(), userID)
		if err != nil {
			return respond(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authorization required")
		}
		users, err := svc.Search(c.Context(), c.Query("name"), caller.Name)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"users": users})
	}
}
