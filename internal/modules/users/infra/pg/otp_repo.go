package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
)

type OtpRepo struct{ db *pgxpool.Pool }

func NewOtpRepo(db *pgxpool.Pool) *OtpRepo { return &OtpRepo{db: db} }

func (r *OtpRepo) Create(ctx context.Context, phoneNumber, code string) (*domain.OtpRecord, error) {
	q := `
INSERT INTO otp_codes (phone_number, code)
VALUES ($1, $2)
RETURNING id, phone_number, code, created_at`
	var rec domain.OtpRecord
	err := r.db.QueryRow(ctx, q, phoneNumber, code).
		Scan(&rec.ID, &rec.PhoneNumber, &rec.Code, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *OtpRepo) FindLatest(ctx context.Context, phoneNumber string) (*domain.OtpRecord, error) {
	// id is a bigserial and breaks created_at ties
	q := `
SELECT id, phone_number, code, created_at
FROM otp_codes
WHERE phone_number = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`
	var rec domain.OtpRecord
	err := r.db.QueryRow(ctx, q, phoneNumber).
		Scan(&rec.ID, &rec.PhoneNumber, &rec.Code, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *OtpRepo) DeleteAll(ctx context.Context, phoneNumber string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM otp_codes WHERE phone_number = $1`, phoneNumber)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
