package verifylog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	dErrors "truadboon/pkg/domain-errors"
)

const inboxSize = 256

// Service accepts verification log entries and hands them to the background
// worker through a buffered inbox. A full inbox drops the entry with a
// warning rather than stalling a verification response.
type Service struct {
	store  Store
	inbox  chan Entry
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		inbox:  make(chan Entry, inboxSize),
		logger: logger,
	}
}

// Inbox exposes the entry channel for the worker.
func (s *Service) Inbox() <-chan Entry {
	return s.inbox
}

// Append enqueues one resolution for persistence.
func (s *Service) Append(ctx context.Context, e Entry) error {
	if e.ID == (uuid.UUID{}) {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	select {
	case s.inbox <- e:
		return nil
	default:
		s.logger.WarnContext(ctx, "verify log inbox full, entry dropped",
			"account_number", e.AccountNumber,
			"status", e.Status,
		)
		return dErrors.New(dErrors.CodeUnavailable, "verify log inbox full")
	}
}

// List returns resolutions from the last N days, optionally filtered by
// status. Days at or below zero defaults to 7.
func (s *Service) List(ctx context.Context, days int, status string) ([]Entry, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)
	entries, err := s.store.List(ctx, since, status)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInternal, "failed to list verification logs")
	}
	return entries, nil
}
