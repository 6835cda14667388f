// Package foundation is the trusted-foundation registry: charities whose
// donation accounts have been verified by an operator.
package foundation

import (
	"time"

	"github.com/google/uuid"
)

// Foundation is one verified charity account.
type Foundation struct {
	ID            uuid.UUID
	Name          string
	AccountName   string
	AccountNumber string
	Bank          string
	Category      string
	Verified      bool
	CreatedAt     time.Time
}

// DisplayAccountName prefers the formal account holder name, falling back to
// the foundation name when registry data predates the account-name column.
func (f Foundation) DisplayAccountName() string {
	if f.AccountName != "" {
		return f.AccountName
	}
	return f.Name
}
