// Package storage persists editor state on the local device: a SQLite
// key/value store standing in for the browser's localStorage, the versioned
// project snapshot, the debounced autosaver, and the user asset library
// with its capacity handling.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/framepeach/framepeach/internal/editor/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// InitDatabase opens the local store database and applies pending migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
