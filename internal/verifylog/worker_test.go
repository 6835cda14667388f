package verifylog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truadboon/internal/verifylog"
	"truadboon/internal/verifylog/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorkerDrainsInbox(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := store.NewInMemory()
	svc := verifylog.NewService(st, discardLogger())
	worker := verifylog.NewWorker(st, svc.Inbox(), nil, discardLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	require.NoError(t, svc.Append(ctx, verifylog.Entry{AccountNumber: "0812345678", Status: "safe", Source: "WEB"}))
	require.NoError(t, svc.Append(ctx, verifylog.Entry{AccountNumber: "0999999999", Status: "danger", Source: "API"}))

	assert.Eventually(t, func() bool {
		entries, err := st.List(context.Background(), time.Time{}, "")
		return err == nil && len(entries) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done

	entries, err := st.List(context.Background(), time.Time{}, "danger")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "0999999999", entries[0].AccountNumber)
	assert.NotZero(t, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestServiceListFiltersByAge(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemory()
	svc := verifylog.NewService(st, discardLogger())

	old := verifylog.Entry{AccountNumber: "0811111111", Status: "warning", CreatedAt: time.Now().AddDate(0, 0, -30)}
	recent := verifylog.Entry{AccountNumber: "0822222222", Status: "warning", CreatedAt: time.Now()}
	require.NoError(t, st.Append(ctx, old))
	require.NoError(t, st.Append(ctx, recent))

	entries, err := svc.List(ctx, 7, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "0822222222", entries[0].AccountNumber)
}
