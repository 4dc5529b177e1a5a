// Package service implements the registration, login and directory lookup
// flows on top of the user and OTP stores. All durable state lives in the
// stores; the service itself keeps no cross-request state.
package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/security"
)

// SMSSender delivers a message body to a phone number over an external
// channel.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

var validate = validator.New()

type Service struct {
	users  domain.UserRepo
	otps   domain.OtpRepo
	sender SMSSender
	tokens *security.JWTManager
	log    *slog.Logger
}

func New(users domain.UserRepo, otps domain.OtpRepo, sender SMSSender, tokens *security.JWTManager, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{users: users, otps: otps, sender: sender, tokens: tokens, log: log}
}

// Caller resolves the authenticated user by id, for handlers that need the
// caller's own record.
func (s *Service) Caller(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
