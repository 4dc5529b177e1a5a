package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
)

const uniqueViolation = "23505"

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, name, username, phone_number, password_hash, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Username, &u.PhoneNumber, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, p domain.CreateUserParams) (*domain.User, error) {
	q := `
INSERT INTO users (name, username, phone_number, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, q, p.Name, p.Username, p.PhoneNumber, p.PasswordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateKey
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) FindByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`
	return scanUser(r.db.QueryRow(ctx, q, phoneNumber))
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *UserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *UserRepo) SearchByName(ctx context.Context, fragment, excludeName string) ([]domain.User, error) {
	q := `SELECT ` + userColumns + `
	      FROM users
	      WHERE name ILIKE '%' || $1 || '%' AND name <> $2
	      ORDER BY created_at`
	rows, err := r.db.Query(ctx, q, fragment, excludeName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	out := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}
