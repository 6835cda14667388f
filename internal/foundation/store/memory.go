package store

import (
	"context"
	"sync"

	"truadboon/internal/foundation"
	"truadboon/internal/identifier"
	"truadboon/pkg/platform/sentinel"
)

// InMemory keeps the foundation registry in a map keyed by normalized account
// number. It backs tests and the zero-config development mode.
type InMemory struct {
	mu          sync.RWMutex
	byAccount   map[string]foundation.Foundation
	insertOrder []string
}

func NewInMemory() *InMemory {
	return &InMemory{byAccount: make(map[string]foundation.Foundation)}
}

// Save upserts a foundation keyed by its normalized account number.
func (s *InMemory) Save(_ context.Context, f foundation.Foundation) error {
	key := identifier.Normalize(f.AccountNumber)
	if key == "" {
		return sentinel.ErrConflict
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byAccount[key]; !exists {
		s.insertOrder = append(s.insertOrder, key)
	}
	s.byAccount[key] = f
	return nil
}

// FindByAccount looks up a verified foundation. The index is already
// normalized, so the raw/normalized fallback of the postgres store collapses
// to a single map probe here.
func (s *InMemory) FindByAccount(_ context.Context, raw, normalized string) (foundation.Foundation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, key := range []string{normalized, identifier.Normalize(raw)} {
		if f, ok := s.byAccount[key]; ok && f.Verified {
			return f, nil
		}
	}
	return foundation.Foundation{}, sentinel.ErrNotFound
}

// List returns verified foundations in insertion order.
func (s *InMemory) List(_ context.Context) ([]foundation.Foundation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]foundation.Foundation, 0, len(s.insertOrder))
	for _, key := range s.insertOrder {
		if f := s.byAccount[key]; f.Verified {
			out = append(out, f)
		}
	}
	return out, nil
}
