package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truadboon/internal/verification"
	dErrors "truadboon/pkg/domain-errors"
)

type stubService struct {
	lastInput verification.Input
	result    verification.Result
	err       error
}

func (s *stubService) Verify(_ context.Context, in verification.Input) (verification.Result, error) {
	s.lastInput = in
	return s.result, s.err
}

func newTestRouter(svc Service) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleVerifyAccount(t *testing.T) {
	svc := &stubService{
		result: verification.Result{
			Status:        verification.StatusSafe,
			AccountName:   "Mirror Foundation (มูลนิธิกระจกเงา)",
			AccountNumber: "507-4-10183-8",
			Bank:          "ธนาคารไทยพาณิชย์",
			Message:       verification.MessageSafe,
			MatchedType:   verification.MatchedFoundation,
		},
	}
	router := newTestRouter(svc)

	rec := postJSON(t, router, "/verify/account", map[string]string{
		"accountNumber": "507-4-10183-8",
		"bank":          "SCB",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var got verification.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, verification.StatusSafe, got.Status)
	assert.Equal(t, verification.MatchedFoundation, got.MatchedType)

	assert.Equal(t, "507-4-10183-8", svc.lastInput.AccountNumber)
	assert.Equal(t, "SCB", svc.lastInput.Bank)
}

func TestHandleVerifyAccountRejectsMissingNumber(t *testing.T) {
	router := newTestRouter(&stubService{})

	rec := postJSON(t, router, "/verify/account", map[string]string{"accountName": "someone"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body["error"])
}

func TestHandleVerifyAccountServiceError(t *testing.T) {
	svc := &stubService{err: dErrors.New(dErrors.CodeUnavailable, "registry lookup failed")}
	router := newTestRouter(svc)

	rec := postJSON(t, router, "/verify/account", map[string]string{"accountNumber": "1234567890"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleVerifyQR(t *testing.T) {
	svc := &stubService{
		result: verification.Result{
			Status:      verification.StatusWarning,
			MatchedType: verification.MatchedNone,
		},
	}
	router := newTestRouter(svc)

	// Payload with a PromptPay mobile proxy 0812345678 in merchant info tag 26.
	payload := "00020101021226400016A0000006770101110102010210081234567853037645802TH"
	rec := postJSON(t, router, "/verify/qr", map[string]string{"payload": payload})

	require.Equal(t, http.StatusOK, rec.Code)

	var got VerifyQRResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "mobile", string(got.IdentifierType))
	assert.Equal(t, "0812345678", svc.lastInput.AccountNumber)
}

func TestHandleVerifyQRWithoutIdentifier(t *testing.T) {
	router := newTestRouter(&stubService{})

	rec := postJSON(t, router, "/verify/qr", map[string]string{"payload": "000201"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body["error"])
}
