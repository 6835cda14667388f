package store

import (
	"context"
	"sync"

	"truadboon/internal/blacklist"
	"truadboon/internal/identifier"
	"truadboon/pkg/platform/sentinel"
)

// InMemory keeps the blacklist in a map keyed by normalized account number.
type InMemory struct {
	mu          sync.RWMutex
	byAccount   map[string]blacklist.Entry
	insertOrder []string
}

func NewInMemory() *InMemory {
	return &InMemory{byAccount: make(map[string]blacklist.Entry)}
}

// Save upserts an entry keyed by its normalized account number.
func (s *InMemory) Save(_ context.Context, e blacklist.Entry) error {
	key := identifier.Normalize(e.AccountNumber)
	if key == "" {
		return sentinel.ErrConflict
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byAccount[key]; !exists {
		s.insertOrder = append(s.insertOrder, key)
	}
	s.byAccount[key] = e
	return nil
}

// FindByAccount looks up a blacklisted account by raw or normalized form.
func (s *InMemory) FindByAccount(_ context.Context, raw, normalized string) (blacklist.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, key := range []string{normalized, identifier.Normalize(raw)} {
		if e, ok := s.byAccount[key]; ok {
			return e, nil
		}
	}
	return blacklist.Entry{}, sentinel.ErrNotFound
}

// List returns entries in insertion order.
func (s *InMemory) List(_ context.Context) ([]blacklist.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]blacklist.Entry, 0, len(s.insertOrder))
	for _, key := range s.insertOrder {
		out = append(out, s.byAccount[key])
	}
	return out, nil
}
