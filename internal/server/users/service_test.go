package users_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/framepeach/framepeach/internal/server"
	"github.com/framepeach/framepeach/internal/server/config"
	"github.com/framepeach/framepeach/internal/server/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*users.Service, *sql.DB) {
	t.Helper()

	db, err := server.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()

	return users.NewService(users.NewSQLiteRepository(db), cfg), db
}

func countUsers(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM users`).Scan(&n))
	return n
}

func TestRegister_Success(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.Equal(t, 1, countUsers(t, db))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Ada", "Again", "ada@example.com", "other")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, 1, countUsers(t, db), "second registration must not create a second row")
}

func TestRegister_EmailIsCaseSensitive(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "s3cret")
	require.NoError(t, err)

	// exact match only, no normalization
	_, err = svc.Register(ctx, "Ada", "Lovelace", "Ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, 2, countUsers(t, db))
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name                                  string
		firstName, lastName, email, password string
	}{
		{"no first name", "", "L", "a@b.c", "pw"},
		{"no last name", "F", "", "a@b.c", "pw"},
		{"no email", "F", "L", "", "pw"},
		{"no password", "F", "L", "a@b.c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.firstName, tt.lastName, tt.email, tt.password)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "s3cret")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestLogin_WrongPasswordAlwaysRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "s3cret")
	require.NoError(t, err)

	// regression for the upstream async-compare race: the comparison is
	// synchronous here, so a wrong password must fail on every attempt
	wrong := []string{"", "s3cre", "s3cret ", "S3CRET", "password", "s3cret\x00"}
	for i := 0; i < 20; i++ {
		for _, pw := range wrong {
			_, token, err := svc.Login(ctx, "ada@example.com", pw)
			assert.ErrorIs(t, err, common.ErrorUnauthorized)
			assert.Empty(t, token)
		}
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "nobody@example.com", "pw")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "s3cret")
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	_, err = svc.GetByID(ctx, created.ID+1000)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRepository_NotFound(t *testing.T) {
	_, db := newTestService(t)
	repo := users.NewSQLiteRepository(db)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
