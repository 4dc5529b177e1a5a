package domain

import (
	"context"
	"time"
)

// OtpRecord is an ephemeral proof of phone control. Several records may
// coexist for one phone number; only the latest is valid for verification.
type OtpRecord struct {
	ID          int64
	PhoneNumber string
	Code        string
	CreatedAt   time.Time
}

type OtpRepo interface {
	Create(ctx context.Context, phoneNumber, code string) (*OtpRecord, error)
	// FindLatest orders by creation time with the store-assigned id as the
	// tie-break, so "latest" stays well-defined under concurrent writes.
	FindLatest(ctx context.Context, phoneNumber string) (*OtpRecord, error)
	DeleteAll(ctx context.Context, phoneNumber string) (int64, error)
}
