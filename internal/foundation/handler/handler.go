package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"truadboon/internal/foundation"
	"truadboon/pkg/platform/httputil"
	"truadboon/pkg/requestcontext"
)

// Service defines the interface for foundation registry reads.
type Service interface {
	List(ctx context.Context) ([]foundation.Foundation, error)
}

// Handler wires foundation endpoints to the registry service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a foundation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts foundation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/foundations", h.HandleList)
}

// FoundationResponse is the wire shape of one registry entry.
type FoundationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
	Category      string `json:"category,omitempty"`
}

// HandleList handles GET /api/foundations requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	list, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "foundation list failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	out := make([]FoundationResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FoundationResponse{
			ID:            f.ID.String(),
			Name:          f.Name,
			AccountName:   f.DisplayAccountName(),
			AccountNumber: f.AccountNumber,
			Bank:          f.Bank,
			Category:      f.Category,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}
