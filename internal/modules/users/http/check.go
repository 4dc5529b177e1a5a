package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/service"
)

type checkUserReq struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// CheckUserHandler accepts a registration candidate and triggers OTP
// delivery. The response only acknowledges the request; the code itself
// travels out of band.
func CheckUserHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req checkUserReq
		if err := c.BodyParser(&req); err != nil {
			return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS", "malformed request body")
		}
		err := svc.CheckUser(c.Context(), service.RegistrationParams{
			Name:        req.Name,
			Username:    req.Username,
			PhoneNumber: req.PhoneNumber,
			Password:    req.Password,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "verification code sent",
		})
	}
}
