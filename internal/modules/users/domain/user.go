package domain

import (
	"context"
	"time"
)

// User is the identity record. PhoneNumber is the unique key and never
// changes once the record exists.
type User struct {
	ID           string
	Name         string
	Username     string
	PhoneNumber  string
	PasswordHash string
	CreatedAt    time.Time
}

type CreateUserParams struct {
	Name         string
	Username     string
	PhoneNumber  string
	PasswordHash string
}

// Projection is the subset of User fields safe to return to clients. The
// password hash is never part of it; the phone number only appears in the
// login response.
type Projection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func (u User) Public() Projection {
	return Projection{ID: u.ID, Name: u.Name, Username: u.Username}
}

type UserRepo interface {
	// Create fails with ErrDuplicateKey if the phone number is taken; the
	// store's uniqueness constraint is the only arbiter for concurrent
	// registrations.
	Create(ctx context.Context, p CreateUserParams) (*User, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	SearchByName(ctx context.Context, fragment, excludeName string) ([]User, error)
}
