package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"truadboon/internal/blacklist"
)

// SeedBlacklist loads the bundled scam-account list into a store. Paired
// with SeedFoundations for the zero-config development mode.
func SeedBlacklist(ctx context.Context, s *InMemory) error {
	now := time.Now()
	seed := []blacklist.Entry{
		{
			AccountNumber: "0999999999",
			AccountName:   "นายมิจฉา ชีพหลอก",
			Bank:          "PROMPTPAY",
			Reason:        "Fake charity scam - impersonating Red Cross",
			ReportedBy:    "user@example.com",
		},
		{
			AccountNumber: "0888888888",
			AccountName:   "นางสาวโกง เงินบริจาค",
			Bank:          "PROMPTPAY",
			Reason:        "Ponzi scheme disguised as disaster relief",
			ReportedBy:    "admin@truadboon.com",
		},
		{
			AccountNumber: "0777777777",
			AccountName:   "นายหลอก ลวงโลก",
			Bank:          "PROMPTPAY",
			Reason:        "Money laundering operation",
			ReportedBy:    "user@example.com",
		},
	}

	for _, e := range seed {
		e.ID = uuid.New()
		e.CreatedAt = now
		if err := s.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
