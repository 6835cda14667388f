package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"truadboon/internal/promptpay"
	"truadboon/internal/verification"
	dErrors "truadboon/pkg/domain-errors"
	"truadboon/pkg/platform/httputil"
	"truadboon/pkg/requestcontext"
)

// Service defines the interface for verification operations.
type Service interface {
	Verify(ctx context.Context, in verification.Input) (verification.Result, error)
}

// Handler wires verification endpoints to the engine.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a verification handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts verification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/verify/account", h.HandleVerifyAccount)
	r.Post("/verify/qr", h.HandleVerifyQR)
}

// VerifyAccountRequest is the manual verification body.
type VerifyAccountRequest struct {
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Bank          string `json:"bank"`
}

// Validate implements httputil.Validatable.
func (r *VerifyAccountRequest) Validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return dErrors.New(dErrors.CodeValidation, "accountNumber is required")
	}
	return nil
}

// HandleVerifyAccount handles POST /api/verify/account requests.
func (h *Handler) HandleVerifyAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[VerifyAccountRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Verify(ctx, verification.Input{
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Bank:          req.Bank,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "account verification failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "account verified",
		"request_id", requestID,
		"status", result.Status,
		"matched_type", result.MatchedType,
		"source", requestcontext.Source(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// VerifyQRRequest carries a raw EMV-QR payload scanned from a donation post.
type VerifyQRRequest struct {
	Payload string `json:"payload"`
}

// Validate implements httputil.Validatable.
func (r *VerifyQRRequest) Validate() error {
	if strings.TrimSpace(r.Payload) == "" {
		return dErrors.New(dErrors.CodeValidation, "payload is required")
	}
	return nil
}

// VerifyQRResponse is the verdict plus what kind of identifier the QR
// carried.
type VerifyQRResponse struct {
	verification.Result
	IdentifierType promptpay.IdentifierType `json:"identifierType"`
}

// HandleVerifyQR handles POST /api/verify/qr requests. The payload is decoded
// and classified, and the resolved identifier is verified like a manual
// lookup.
func (h *Handler) HandleVerifyQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[VerifyQRRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ident := promptpay.DecodeAndClassify(req.Payload)
	if ident.Type == promptpay.TypeUnknown {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "no account identifier found in QR payload"))
		return
	}

	result, err := h.service.Verify(ctx, verification.Input{
		AccountNumber: ident.Value,
		AccountName:   promptpay.Name(req.Payload),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "qr verification failed",
			"request_id", requestID,
			"identifier_type", ident.Type,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "qr verified",
		"request_id", requestID,
		"identifier_type", ident.Type,
		"status", result.Status,
		"matched_type", result.MatchedType,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, VerifyQRResponse{Result: result, IdentifierType: ident.Type})
}
