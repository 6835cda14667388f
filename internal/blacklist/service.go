package blacklist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"truadboon/internal/identifier"
	dErrors "truadboon/pkg/domain-errors"
	"truadboon/pkg/platform/sentinel"
)

// Store is the blacklist persistence port.
type Store interface {
	FindByAccount(ctx context.Context, raw, normalized string) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, e Entry) error
}

// Service fronts the fraud registry for handlers and the verification engine.
type Service struct {
	store    Store
	onReport func(ctx context.Context, normalized string)
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithReportHook registers a callback invoked with the normalized account
// number after every successful report. The verdict cache hangs off this so a
// fresh report is visible immediately.
func WithReportHook(hook func(ctx context.Context, normalized string)) ServiceOption {
	return func(s *Service) { s.onReport = hook }
}

func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindByAccount returns the blacklist entry for the account, or
// sentinel.ErrNotFound.
func (s *Service) FindByAccount(ctx context.Context, raw, normalized string) (Entry, error) {
	return s.store.FindByAccount(ctx, raw, normalized)
}

// Check looks up a single account for the public check endpoint.
func (s *Service) Check(ctx context.Context, accountNumber string) (Entry, error) {
	normalized := identifier.Normalize(accountNumber)
	if normalized == "" {
		return Entry{}, dErrors.New(dErrors.CodeValidation, "account number is required")
	}
	e, err := s.store.FindByAccount(ctx, accountNumber, normalized)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return Entry{}, dErrors.New(dErrors.CodeNotFound, "account is not blacklisted")
		}
		return Entry{}, dErrors.New(dErrors.CodeInternal, "blacklist lookup failed")
	}
	return e, nil
}

// ReportInput carries a new fraud report from the admin endpoint.
type ReportInput struct {
	AccountNumber string
	AccountName   string
	Bank          string
	Reason        string
	ReportedBy    string
}

// Report records a fraudulent account. Duplicate reports for the same account
// overwrite the previous entry so the freshest reason wins.
func (s *Service) Report(ctx context.Context, in ReportInput) (Entry, error) {
	if identifier.Normalize(in.AccountNumber) == "" {
		return Entry{}, dErrors.New(dErrors.CodeValidation, "account number is required")
	}
	if strings.TrimSpace(in.Reason) == "" {
		return Entry{}, dErrors.New(dErrors.CodeValidation, "reason is required")
	}

	e := Entry{
		ID:            uuid.New(),
		AccountNumber: in.AccountNumber,
		AccountName:   in.AccountName,
		Bank:          in.Bank,
		Reason:        in.Reason,
		ReportedBy:    in.ReportedBy,
		CreatedAt:     time.Now(),
	}
	if err := s.store.Save(ctx, e); err != nil {
		return Entry{}, dErrors.New(dErrors.CodeInternal, "failed to save blacklist entry")
	}
	if s.onReport != nil {
		s.onReport(ctx, identifier.Normalize(e.AccountNumber))
	}
	return e, nil
}
