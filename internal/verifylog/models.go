// Package verifylog records every verification resolution for the admin
// audit trail and the downstream analytics topic.
package verifylog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one verification resolution. Status is carried as a string so the
// log layer stays decoupled from the verdict type.
type Entry struct {
	ID            uuid.UUID
	AccountNumber string
	AccountName   string
	Bank          string
	Status        string
	Source        string
	UserID        string
	CreatedAt     time.Time
}

// Store is the verification-log persistence port.
type Store interface {
	Append(ctx context.Context, e Entry) error
	List(ctx context.Context, since time.Time, status string) ([]Entry, error)
}
