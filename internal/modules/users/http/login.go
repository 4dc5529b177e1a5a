package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/service"
)

type loginReq struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

func LoginHandler(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginReq
		if err := c.BodyParser(&req); err != nil {
			return respond(c, fiber.StatusBadRequest, "INVALID_FIELDS", "malformed request body")
		}
		res, err := svc.Login(c.Context(), req.PhoneNumber, req.Password)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"user":    res.User,
			"token":   res.Token,
			"message": "user logged in successfully",
		})
	}
}
