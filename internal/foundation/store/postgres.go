package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"truadboon/internal/foundation"
	"truadboon/internal/identifier"
	"truadboon/pkg/platform/sentinel"
)

// Postgres persists the foundation registry.
//
// Account numbers are stored as operators entered them (dashes included), so
// an exact-match probe runs first and a normalized scan over verified rows
// papers over inconsistent stored formatting. The registry is a few hundred
// rows; the scan is not a concern.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const foundationColumns = `id, name, account_name, account_number, bank, category, verified, created_at`

func (s *Postgres) FindByAccount(ctx context.Context, raw, normalized string) (foundation.Foundation, error) {
	query := `
		SELECT ` + foundationColumns + `
		FROM foundations
		WHERE verified = TRUE AND account_number IN ($1, $2)
		LIMIT 1
	`
	f, err := scanFoundation(s.db.QueryRowContext(ctx, query, raw, normalized))
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return foundation.Foundation{}, fmt.Errorf("find foundation: %w", err)
	}

	// Fallback: compare in normalized form.
	rows, err := s.db.QueryContext(ctx, `SELECT `+foundationColumns+` FROM foundations WHERE verified = TRUE`)
	if err != nil {
		return foundation.Foundation{}, fmt.Errorf("scan foundations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f, err := scanFoundation(rows)
		if err != nil {
			return foundation.Foundation{}, fmt.Errorf("scan foundations: %w", err)
		}
		if identifier.Normalize(f.AccountNumber) == normalized {
			return f, nil
		}
	}
	if err := rows.Err(); err != nil {
		return foundation.Foundation{}, fmt.Errorf("scan foundations: %w", err)
	}
	return foundation.Foundation{}, sentinel.ErrNotFound
}

func (s *Postgres) List(ctx context.Context) ([]foundation.Foundation, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+foundationColumns+` FROM foundations WHERE verified = TRUE ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list foundations: %w", err)
	}
	defer rows.Close()

	var out []foundation.Foundation
	for rows.Next() {
		f, err := scanFoundation(rows)
		if err != nil {
			return nil, fmt.Errorf("list foundations: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Postgres) Save(ctx context.Context, f foundation.Foundation) error {
	query := `
		INSERT INTO foundations (` + foundationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_number) DO UPDATE SET
			name = EXCLUDED.name,
			account_name = EXCLUDED.account_name,
			bank = EXCLUDED.bank,
			category = EXCLUDED.category,
			verified = EXCLUDED.verified
	`
	_, err := s.db.ExecContext(ctx, query,
		f.ID, f.Name, f.AccountName, f.AccountNumber, f.Bank, f.Category, f.Verified, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save foundation: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFoundation(row rowScanner) (foundation.Foundation, error) {
	var f foundation.Foundation
	err := row.Scan(&f.ID, &f.Name, &f.AccountName, &f.AccountNumber, &f.Bank, &f.Category, &f.Verified, &f.CreatedAt)
	return f, err
}
