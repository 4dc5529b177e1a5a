package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/service"
)

type registerUserReq struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	OtpCode     string `json:"otp_code"`
}

// RegisterUserHandler verifies the submitted OTP code and creates the
// account.
func RegisterUserHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerUserReq
		if err := c.BodyParser(&req); err != nil {
			return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS", "malformed request body")
		}
		proj, err := svc.RegisterUser(c.Context(), service.RegistrationParams{
			Name:        req.Name,
			Username:    req.Username,
			PhoneNumber: req.PhoneNumber,
			Password:    req.Password,
		}, req.OtpCode)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"user":    proj,
			"message": "user created successfully",
		})
	}
}
