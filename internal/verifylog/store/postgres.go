package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"truadboon/internal/verifylog"
)

// Postgres persists verification logs.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const logColumns = `id, account_number, account_name, bank, status, source, user_id, created_at`

func (s *Postgres) Append(ctx context.Context, e verifylog.Entry) error {
	query := `
		INSERT INTO verify_logs (` + logColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.AccountNumber, e.AccountName, e.Bank, e.Status, e.Source, e.UserID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append verify log: %w", err)
	}
	return nil
}

func (s *Postgres) List(ctx context.Context, since time.Time, status string) ([]verifylog.Entry, error) {
	query := `SELECT ` + logColumns + ` FROM verify_logs WHERE created_at >= $1`
	args := []any{since}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list verify logs: %w", err)
	}
	defer rows.Close()

	var out []verifylog.Entry
	for rows.Next() {
		var e verifylog.Entry
		if err := rows.Scan(&e.ID, &e.AccountNumber, &e.AccountName, &e.Bank, &e.Status, &e.Source, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("list verify logs: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
