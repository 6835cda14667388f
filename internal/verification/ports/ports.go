// Package ports defines the collaborator interfaces the verification engine
// depends on, keeping it decoupled from store and queue implementations.
package ports

//go:generate mockgen -source=ports.go -destination=../mocks/mocks.go -package=mocks

import (
	"context"

	"truadboon/internal/blacklist"
	"truadboon/internal/foundation"
	"truadboon/internal/verifylog"
)

// FoundationLookup resolves a verified foundation by account number.
// Implementations return sentinel.ErrNotFound when no verified foundation
// holds the account.
type FoundationLookup interface {
	FindByAccount(ctx context.Context, raw, normalized string) (foundation.Foundation, error)
}

// BlacklistLookup resolves a fraud report by account number. Implementations
// return sentinel.ErrNotFound when the account is clean.
type BlacklistLookup interface {
	FindByAccount(ctx context.Context, raw, normalized string) (blacklist.Entry, error)
}

// LogAppender records one verification resolution. Append failures must not
// affect the verdict.
type LogAppender interface {
	Append(ctx context.Context, e verifylog.Entry) error
}
