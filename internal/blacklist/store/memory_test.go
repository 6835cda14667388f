package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truadboon/internal/blacklist"
	"truadboon/pkg/platform/sentinel"
)

func TestInMemoryFindByAccount(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	entry := blacklist.Entry{
		ID:            uuid.New(),
		AccountNumber: "099-999-9999",
		Reason:        "Fake charity scam",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, s.Save(ctx, entry))

	t.Run("matches despite formatting differences", func(t *testing.T) {
		got, err := s.FindByAccount(ctx, "0999999999", "0999999999")
		require.NoError(t, err)
		assert.Equal(t, entry.ID, got.ID)
		assert.Equal(t, "Fake charity scam", got.Reason)
	})

	t.Run("unknown account returns not found", func(t *testing.T) {
		_, err := s.FindByAccount(ctx, "0123456789", "0123456789")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("empty account number is rejected on save", func(t *testing.T) {
		err := s.Save(ctx, blacklist.Entry{AccountNumber: "---"})
		assert.ErrorIs(t, err, sentinel.ErrConflict)
	})
}

func TestSeedBlacklist(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	require.NoError(t, SeedBlacklist(ctx, s))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	got, err := s.FindByAccount(ctx, "0999999999", "0999999999")
	require.NoError(t, err)
	assert.Contains(t, got.Reason, "Fake charity scam")
}
