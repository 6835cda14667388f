package verifylog

import (
	"context"
	"log/slog"
)

// Worker drains the service inbox and persists each entry, mirroring it to
// the analytics publisher when one is configured. Persistence failures are
// logged and skipped so one bad row never stops the drain.
type Worker struct {
	store     Store
	inbox     <-chan Entry
	publisher *Publisher
	logger    *slog.Logger
}

func NewWorker(store Store, inbox <-chan Entry, publisher *Publisher, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, publisher: publisher, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-w.inbox:
			if err := w.store.Append(ctx, e); err != nil {
				w.logger.ErrorContext(ctx, "verify log append failed",
					"account_number", e.AccountNumber,
					"error", err,
				)
			}
			if w.publisher != nil {
				w.publisher.Publish(e)
			}
		}
	}
}
