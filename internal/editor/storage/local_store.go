package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/framepeach/framepeach/internal/dbx"
)

// LocalStore is the editor's on-device key/value storage. Values are opaque
// JSON blobs; Get returns common.ErrorNotFound for absent keys.
type LocalStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all pairs atomically: either every key is updated or
	// none is.
	SetMany(ctx context.Context, pairs map[string][]byte) error
	Delete(ctx context.Context, key string) error
	// WipePrefix deletes every key with the given prefix and reports how
	// many were removed.
	WipePrefix(ctx context.Context, prefix string) (int64, error)
}

// SQLiteStore implements LocalStore on a single-table SQLite database.
//
// QuotaBytes emulates the device storage quota: a Set or SetMany whose
// value exceeds it fails with common.ErrQuotaExceeded. Zero means no quota.
type SQLiteStore struct {
	db         *sql.DB
	QuotaBytes int
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) checkQuota(value []byte) error {
	if s.QuotaBytes > 0 && len(value) > s.QuotaBytes {
		return fmt.Errorf("%w: %d bytes", common.ErrQuotaExceeded, len(value))
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get local_store[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO local_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set local_store[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.checkQuota(value); err != nil {
		return err
	}
	return set(ctx, s.db, key, value)
}

func (s *SQLiteStore) SetMany(ctx context.Context, pairs map[string][]byte) error {
	for _, value := range pairs {
		if err := s.checkQuota(value); err != nil {
			return err
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range pairs {
			if err := set(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local_store WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete local_store[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) WipePrefix(ctx context.Context, prefix string) (int64, error) {
	pattern := strings.ReplaceAll(strings.ReplaceAll(prefix, `\`, `\\`), "%", `\%`)
	pattern = strings.ReplaceAll(pattern, "_", `\_`) + "%"

	res, err := s.db.ExecContext(ctx, `DELETE FROM local_store WHERE key LIKE ? ESCAPE '\'`, pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to wipe prefix %s: %w", prefix, err)
	}
	return res.RowsAffected()
}
