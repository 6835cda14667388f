package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"truadboon/internal/blacklist"
	dErrors "truadboon/pkg/domain-errors"
	"truadboon/pkg/platform/httputil"
	"truadboon/pkg/requestcontext"
)

// Service defines the interface for blacklist operations.
type Service interface {
	Check(ctx context.Context, accountNumber string) (blacklist.Entry, error)
	Report(ctx context.Context, in blacklist.ReportInput) (blacklist.Entry, error)
}

// Handler wires blacklist endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a blacklist handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public check endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/blacklist/{accountNumber}", h.HandleCheck)
}

// RegisterAdmin mounts the report endpoint; the router wraps it in the admin
// key middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/blacklist", h.HandleReport)
}

// EntryResponse is the wire shape of one blacklist entry.
type EntryResponse struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"accountNumber"`
	AccountName   string    `json:"accountName,omitempty"`
	Bank          string    `json:"bank,omitempty"`
	Reason        string    `json:"reason"`
	ReportedAt    time.Time `json:"reportedAt"`
}

func fromEntry(e blacklist.Entry) EntryResponse {
	return EntryResponse{
		ID:            e.ID.String(),
		AccountNumber: e.AccountNumber,
		AccountName:   e.AccountName,
		Bank:          e.Bank,
		Reason:        e.Reason,
		ReportedAt:    e.CreatedAt,
	}
}

// HandleCheck handles GET /api/blacklist/{accountNumber} requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	accountNumber := chi.URLParam(r, "accountNumber")
	entry, err := h.service.Check(ctx, accountNumber)
	if err != nil {
		var domainErr *dErrors.Error
		if !errors.As(err, &domainErr) || domainErr.Code == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "blacklist check failed",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromEntry(entry))
}

// ReportRequest is the admin fraud-report body.
type ReportRequest struct {
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Bank          string `json:"bank"`
	Reason        string `json:"reason"`
	ReportedBy    string `json:"reportedBy"`
}

// Validate implements httputil.Validatable.
func (r *ReportRequest) Validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return dErrors.New(dErrors.CodeValidation, "accountNumber is required")
	}
	if strings.TrimSpace(r.Reason) == "" {
		return dErrors.New(dErrors.CodeValidation, "reason is required")
	}
	return nil
}

// HandleReport handles POST /api/blacklist requests.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ReportRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	reportedBy := req.ReportedBy
	if reportedBy == "" {
		reportedBy = requestcontext.UserID(ctx)
	}

	entry, err := h.service.Report(ctx, blacklist.ReportInput{
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Bank:          req.Bank,
		Reason:        req.Reason,
		ReportedBy:    reportedBy,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "blacklist report failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "account blacklisted",
		"request_id", requestID,
		"account_number", entry.AccountNumber,
		"reported_by", entry.ReportedBy,
	)
	httputil.WriteJSON(w, http.StatusCreated, fromEntry(entry))
}
