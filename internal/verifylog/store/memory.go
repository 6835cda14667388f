package store

import (
	"context"
	"sync"
	"time"

	"truadboon/internal/verifylog"
)

// InMemory keeps verification logs in an append-only slice.
type InMemory struct {
	mu      sync.RWMutex
	entries []verifylog.Entry
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Append(_ context.Context, e verifylog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

// List returns entries at or after since, newest first. Empty status means
// all statuses.
func (s *InMemory) List(_ context.Context, since time.Time, status string) ([]verifylog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []verifylog.Entry
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.CreatedAt.Before(since) {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
