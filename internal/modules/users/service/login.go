package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/security"
)

// LoginResult pairs the public projection with a freshly issued session
// token.
type LoginResult struct {
	User  domain.Projection
	Token string
}

// Login verifies the credentials for the phone number. An unknown number
// and a wrong password produce the same error, so callers cannot probe for
// registered numbers.
func (s *Service) Login(ctx context.Context, phoneNumber, password string) (*LoginResult, error) {
	u, err := s.users.FindByPhone(ctx, phoneNumber)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	ok, err := security.CheckPassword(u.PasswordHash, password)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("token issue: %w", err)
	}

	proj := u.Public()
	proj.PhoneNumber = u.PhoneNumber
	return &LoginResult{User: proj, Token: token}, nil
}
