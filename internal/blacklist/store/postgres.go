package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"truadboon/internal/blacklist"
	"truadboon/internal/identifier"
	"truadboon/pkg/platform/sentinel"
)

// Postgres persists the blacklist. Same lookup strategy as the foundation
// store: exact probe first, normalized scan as the formatting fallback.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const blacklistColumns = `id, account_number, account_name, bank, reason, reported_by, created_at`

func (s *Postgres) FindByAccount(ctx context.Context, raw, normalized string) (blacklist.Entry, error) {
	query := `
		SELECT ` + blacklistColumns + `
		FROM blacklist
		WHERE account_number IN ($1, $2)
		LIMIT 1
	`
	e, err := scanEntry(s.db.QueryRowContext(ctx, query, raw, normalized))
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return blacklist.Entry{}, fmt.Errorf("find blacklist entry: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+blacklistColumns+` FROM blacklist`)
	if err != nil {
		return blacklist.Entry{}, fmt.Errorf("scan blacklist: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return blacklist.Entry{}, fmt.Errorf("scan blacklist: %w", err)
		}
		if identifier.Normalize(e.AccountNumber) == normalized {
			return e, nil
		}
	}
	if err := rows.Err(); err != nil {
		return blacklist.Entry{}, fmt.Errorf("scan blacklist: %w", err)
	}
	return blacklist.Entry{}, sentinel.ErrNotFound
}

func (s *Postgres) List(ctx context.Context) ([]blacklist.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+blacklistColumns+` FROM blacklist ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list blacklist: %w", err)
	}
	defer rows.Close()

	var out []blacklist.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list blacklist: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Postgres) Save(ctx context.Context, e blacklist.Entry) error {
	query := `
		INSERT INTO blacklist (` + blacklistColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_number) DO UPDATE SET
			account_name = EXCLUDED.account_name,
			bank = EXCLUDED.bank,
			reason = EXCLUDED.reason,
			reported_by = EXCLUDED.reported_by
	`
	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.AccountNumber, e.AccountName, e.Bank, e.Reason, e.ReportedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save blacklist entry: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (blacklist.Entry, error) {
	var e blacklist.Entry
	err := row.Scan(&e.ID, &e.AccountNumber, &e.AccountName, &e.Bank, &e.Reason, &e.ReportedBy, &e.CreatedAt)
	return e, err
}
