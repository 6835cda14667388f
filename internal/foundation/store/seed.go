package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"truadboon/internal/foundation"
)

// SeedFoundations loads the bundled verified-foundation registry into a
// store. Used when no database is configured so development and demos start
// with real lookups working.
func SeedFoundations(ctx context.Context, s *InMemory) error {
	now := time.Now()
	seed := []foundation.Foundation{
		{
			Name:          "Songklanagarind for Disaster Relief (ม.อ. หาดใหญ่)",
			AccountNumber: "565-471106-1",
			Bank:          "SCB",
			Category:      "Disaster Relief",
		},
		{
			Name:          "Thai Red Cross Society for Disaster",
			AccountNumber: "045-3-04637-0",
			Bank:          "SCB",
			Category:      "Disaster Relief",
		},
		{
			Name:          "Mirror Foundation (มูลนิธิกระจกเงา)",
			AccountNumber: "507-4-10183-8",
			Bank:          "SCB",
			Category:      "Medical",
		},
		{
			Name:          "Doing Good Foundation (มูลนิธิทำดี)",
			AccountNumber: "713-2-59590-3",
			Bank:          "KBANK",
			Category:      "Education",
		},
		{
			Name:          "Hat Yai City Climate (Southern Network)",
			AccountNumber: "018-1-23504-7",
			Bank:          "KBANK",
			Category:      "Environment",
		},
	}

	for _, f := range seed {
		f.ID = uuid.New()
		f.Verified = true
		f.CreatedAt = now
		if err := s.Save(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
