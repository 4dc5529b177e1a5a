package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/security"
)

func seedUser(t *testing.T, users domain.UserRepo, phoneNumber, password string) *domain.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	u, err := users.Create(context.Background(), domain.CreateUserParams{
		Name:         "Ada",
		Username:     "ada",
		PhoneNumber:  phoneNumber,
		PasswordHash: hash,
	})
	require.NoError(t, err)
	return u
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _, _ := newTestService(t)
	u := seedUser(t, users, phone, "correct-horse")

	res, err := svc.Login(ctx, phone, "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, u.ID, res.User.ID)
	assert.Equal(t, "Ada", res.User.Name)
	assert.Equal(t, "ada", res.User.Username)
	assert.Equal(t, phone, res.User.PhoneNumber)
	require.NotEmpty(t, res.Token)

	// token is bound to the user id
	sub, err := security.NewJWTManager("test-secret", time.Hour).Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, sub)
}

func TestLoginFailureIsUniform(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _, _ := newTestService(t)
	seedUser(t, users, phone, "correct-horse")

	_, wrongPw := svc.Login(ctx, phone, "wrong-password")
	_, unknown := svc.Login(ctx, "+15559999", "whatever-pass")

	// no such user and wrong password must be indistinguishable
	assert.ErrorIs(t, wrongPw, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPw, unknown)
}

func TestLoginIssuesDistinctTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _, _ := newTestService(t)
	seedUser(t, users, phone, "correct-horse")

	r1, err := svc.Login(ctx, phone, "correct-horse")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // iat has second resolution
	r2, err := svc.Login(ctx, phone, "correct-horse")
	require.NoError(t, err)

	assert.NotEqual(t, r1.Token, r2.Token)
}
