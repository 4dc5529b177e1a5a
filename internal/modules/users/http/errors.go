package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
)

// fail maps domain errors onto transport codes: validation 400, conflict
// 409, unauthorized 401, everything else 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return respond(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrDuplicateUser):
		return respond(c, fiber.StatusConflict, "USER_EXISTS", "user already exists")
	case errors.Is(err, domain.ErrOtpMismatch):
		return respond(c, fiber.StatusUnauthorized, "OTP_MISMATCH", "otp code is wrong")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return respond(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid phone number or password")
	default:
		return respond(c, fiber.StatusInternalServerError, "SERVER_ERROR", "internal error")
	}
}

func respond(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"error_code": code,
		"message":    msg,
	})
}
