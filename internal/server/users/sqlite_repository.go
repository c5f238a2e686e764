package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/framepeach/framepeach/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *User) (*User, error) {

	query :=
		`INSERT INTO users (firstname, lastname, email, password)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, created_at
		`

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		// the unique index on email backstops the service-level lookup
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

// GetByEmail looks a user up by exact, case-sensitive email match.
func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, firstname, lastname, email, password, created_at FROM users
		 WHERE email = ?
		`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	query :=
		`SELECT id, firstname, lastname, email, password, created_at FROM users
		 WHERE id = ?
		`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}
