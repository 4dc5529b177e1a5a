package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/security"
)

// RegistrationParams is the candidate user payload shared by both
// registration phases.
type RegistrationParams struct {
	Name        string `validate:"required,min=2,max=50"`
	Username    string `validate:"required,min=2,max=50"`
	PhoneNumber string `validate:"required,e164"`
	Password    string `validate:"required,min=8,max=50"`
}

const otpMessage = "Your verification code is %s"

// CheckUser runs the pre-registration phase: it rejects phone numbers that
// already have an account, validates the candidate fields without
// persisting anything, and kicks off OTP delivery. The caller is
// acknowledged before delivery or persistence of the code is confirmed;
// dispatch failures are logged, never returned.
func (s *Service) CheckUser(ctx context.Context, p RegistrationParams) error {
	if _, err := s.users.FindByPhone(ctx, p.PhoneNumber); err == nil {
		return domain.ErrDuplicateUser
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("user lookup: %w", err)
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	// Detach the dispatch from the request: a slow or failed delivery must
	// not block or fail the response.
	go s.dispatchOtp(context.WithoutCancel(ctx), p.PhoneNumber)
	return nil
}

// dispatchOtp generates a code, attempts delivery, and only then persists
// the record. A code that was delivered but failed to persist can never
// match; recovery is requesting a fresh code.
func (s *Service) dispatchOtp(ctx context.Context, phoneNumber string) {
	code, err := security.OTPCode()
	if err != nil {
		s.log.Error("otp generation failed", "phone_number", phoneNumber, "err", err)
		return
	}
	if err := s.sender.Send(ctx, phoneNumber, fmt.Sprintf(otpMessage, code)); err != nil {
		s.log.Error("otp delivery failed", "phone_number", phoneNumber, "err", err)
		return
	}
	if _, err := s.otps.Create(ctx, phoneNumber, code); err != nil {
		s.log.Error("otp persistence failed after delivery", "phone_number", phoneNumber, "err", err)
	}
}

// RegisterUser runs the verification phase: the submitted code must equal
// the latest stored code for the phone number. On success the user is
// created first and the codes are deleted last, so a half-completed
// registration never consumes the OTP. On a mismatch the stored records
// are left untouched and the caller may retry.
func (s *Service) RegisterUser(ctx context.Context, p RegistrationParams, code string) (*domain.Projection, error) {
	if _, err := s.users.FindByPhone(ctx, p.PhoneNumber); err == nil {
		return nil, domain.ErrDuplicateUser
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	latest, err := s.otps.FindLatest(ctx, p.PhoneNumber)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrOtpMismatch
	}
	if err != nil {
		return nil, fmt.Errorf("otp lookup: %w", err)
	}
	if latest.Code != code {
		return nil, domain.ErrOtpMismatch
	}

	hash, err := security.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", err)
	}
	u, err := s.users.Create(ctx, domain.CreateUserParams{
		Name:         p.Name,
		Username:     p.Username,
		PhoneNumber:  p.PhoneNumber,
		PasswordHash: hash,
	})
	if errors.Is(err, domain.ErrDuplicateKey) {
		// lost the race against a concurrent registration
		return nil, domain.ErrDuplicateUser
	}
	if err != nil {
		return nil, fmt.Errorf("user create: %w", err)
	}

	// Best-effort cleanup: stale records cannot corrupt state, a new
	// registration for this number is blocked by the user row anyway.
	if _, err := s.otps.DeleteAll(ctx, p.PhoneNumber); err != nil {
		s.log.Warn("otp cleanup failed", "phone_number", p.PhoneNumber, "err", err)
	}

	proj := u.Public()
	return &proj, nil
}
