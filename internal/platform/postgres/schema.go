package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema DDL, applied idempotently at startup. The tables are small and
// additive; a migration tool would be overkill for three tables.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS foundations (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		account_name TEXT NOT NULL DEFAULT '',
		account_number TEXT NOT NULL UNIQUE,
		bank TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS blacklist (
		id UUID PRIMARY KEY,
		account_number TEXT NOT NULL UNIQUE,
		account_name TEXT NOT NULL DEFAULT '',
		bank TEXT NOT NULL DEFAULT '',
		reason TEXT NOT NULL,
		reported_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS verify_logs (
		id UUID PRIMARY KEY,
		account_number TEXT NOT NULL,
		account_name TEXT NOT NULL DEFAULT '',
		bank TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		source TEXT NOT NULL DEFAULT 'WEB',
		user_id TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_verify_logs_created_at ON verify_logs (created_at)`,
}

// Migrate creates the schema if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
