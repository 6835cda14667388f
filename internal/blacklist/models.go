// Package blacklist is the fraud registry: accounts reported for donation
// scams. A hit here outranks everything else in a verification verdict.
package blacklist

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one reported fraudulent account.
type Entry struct {
	ID            uuid.UUID
	AccountNumber string
	AccountName   string
	Bank          string
	Reason        string
	ReportedBy    string
	CreatedAt     time.Time
}
