package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/framepeach/framepeach/internal/server/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// InitDatabase opens the SQLite auth store and applies pending migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// one connection: SQLite serializes writes anyway, and this keeps
	// in-memory databases visible across the pool
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
