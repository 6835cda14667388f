package foundation

import (
	"context"
	"errors"

	dErrors "truadboon/pkg/domain-errors"
	"truadboon/pkg/platform/sentinel"
)

// Store is the registry persistence port. Two implementations exist: an
// in-memory map for tests and seeded development, and a postgres adapter.
type Store interface {
	FindByAccount(ctx context.Context, raw, normalized string) (Foundation, error)
	List(ctx context.Context) ([]Foundation, error)
	Save(ctx context.Context, f Foundation) error
}

// Service fronts the foundation registry for handlers and the verification
// engine.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// FindByAccount returns the verified foundation holding the account, or
// sentinel.ErrNotFound.
func (s *Service) FindByAccount(ctx context.Context, raw, normalized string) (Foundation, error) {
	return s.store.FindByAccount(ctx, raw, normalized)
}

// List returns all verified foundations for the public directory endpoint.
func (s *Service) List(ctx context.Context) ([]Foundation, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.New(dErrors.CodeUnavailable, "foundation registry unavailable")
		}
		return nil, dErrors.New(dErrors.CodeInternal, "failed to list foundations")
	}
	return list, nil
}
