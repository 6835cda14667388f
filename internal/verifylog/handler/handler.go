package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"truadboon/internal/verifylog"
	dErrors "truadboon/pkg/domain-errors"
	"truadboon/pkg/platform/httputil"
	"truadboon/pkg/requestcontext"
)

// Service defines the interface for log queries.
type Service interface {
	List(ctx context.Context, days int, status string) ([]verifylog.Entry, error)
}

// Handler wires the admin log endpoint to the verifylog service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a verifylog handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterAdmin mounts the log endpoint; the router wraps it in the admin key
// middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/logs", h.HandleList)
}

// EntryResponse is the wire shape of one logged resolution.
type EntryResponse struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"accountNumber"`
	AccountName   string    `json:"accountName,omitempty"`
	Bank          string    `json:"bank,omitempty"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	UserID        string    `json:"userId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HandleList handles GET /api/logs requests. Query params: days (default 7)
// and status (safe, warning, danger).
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "days must be an integer"))
			return
		}
		days = parsed
	}

	status := r.URL.Query().Get("status")
	switch status {
	case "", "safe", "warning", "danger":
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "status must be safe, warning or danger"))
		return
	}

	entries, err := h.service.List(ctx, days, status)
	if err != nil {
		h.logger.ErrorContext(ctx, "verify log list failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ID:            e.ID.String(),
			AccountNumber: e.AccountNumber,
			AccountName:   e.AccountName,
			Bank:          e.Bank,
			Status:        e.Status,
			Source:        e.Source,
			UserID:        e.UserID,
			CreatedAt:     e.CreatedAt,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}
