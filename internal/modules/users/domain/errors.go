package domain

import "errors"

var (
	// ErrValidation wraps field-level problems with a submitted payload.
	ErrValidation = errors.New("invalid fields")

	ErrDuplicateUser = errors.New("user already exists")

	// ErrOtpMismatch covers both a wrong code and the absence of any stored
	// code for the phone number.
	ErrOtpMismatch = errors.New("otp code is wrong")

	// ErrInvalidCredentials covers both an unknown phone number and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned by UserRepo.Create on a phone number
	// uniqueness violation.
	ErrDuplicateKey = errors.New("duplicate key")
)
