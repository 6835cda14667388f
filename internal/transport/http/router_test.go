package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"truadboon/internal/blacklist"
	blacklisthandler "truadboon/internal/blacklist/handler"
	blackliststore "truadboon/internal/blacklist/store"
	"truadboon/internal/foundation"
	foundationhandler "truadboon/internal/foundation/handler"
	foundationstore "truadboon/internal/foundation/store"
	"truadboon/internal/verification"
	verificationhandler "truadboon/internal/verification/handler"
	"truadboon/internal/verifylog"
	verifyloghandler "truadboon/internal/verifylog/handler"
	verifylogstore "truadboon/internal/verifylog/store"
)

// newTestDeps assembles a full stack on seeded in-memory stores, the same
// wiring main performs without postgres, redis or kafka.
func newTestDeps(t *testing.T, adminKeyHash string) Deps {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fs := foundationstore.NewInMemory()
	bs := blackliststore.NewInMemory()
	require.NoError(t, foundationstore.SeedFoundations(ctx, fs))
	require.NoError(t, blackliststore.SeedBlacklist(ctx, bs))

	foundationService := foundation.NewService(fs)
	blacklistService := blacklist.NewService(bs)
	logService := verifylog.NewService(verifylogstore.NewInMemory(), logger)
	verifyService := verification.NewService(foundationService, blacklistService, logService)

	return Deps{
		Logger:       logger,
		Verification: verificationhandler.New(verifyService, logger),
		Foundations:  foundationhandler.New(foundationService, logger),
		Blacklist:    blacklisthandler.New(blacklistService, logger),
		VerifyLogs:   verifyloghandler.New(logService, logger),
		AdminKeyHash: adminKeyHash,
	}
}

func TestRouterVerifyAccountEndToEnd(t *testing.T) {
	router := NewRouter(newTestDeps(t, ""))

	body := bytes.NewBufferString(`{"accountNumber":"507-4-10183-8"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/verify/account", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var result verification.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, verification.StatusSafe, result.Status)
	assert.Equal(t, verification.MatchedFoundation, result.MatchedType)
}

func TestRouterBlacklistedAccountIsDanger(t *testing.T) {
	router := NewRouter(newTestDeps(t, ""))

	body := bytes.NewBufferString(`{"accountNumber":"0999999999"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/verify/account", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result verification.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, verification.StatusDanger, result.Status)
	assert.Contains(t, result.Message, "Fake charity scam")
}

func TestRouterFoundationList(t *testing.T) {
	router := NewRouter(newTestDeps(t, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/foundations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []foundationhandler.FoundationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 5)
}

func TestRouterAdminEndpointsRequireKey(t *testing.T) {
	key := "super-secret"
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	require.NoError(t, err)

	router := NewRouter(newTestDeps(t, string(hash)))

	t.Run("missing key is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		req.Header.Set("X-Admin-Key", "guess")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid key passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		req.Header.Set("X-Admin-Key", key)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("report then check round trip", func(t *testing.T) {
		body := bytes.NewBufferString(`{"accountNumber":"0611111111","reason":"Romance scam"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/blacklist", body)
		req.Header.Set("X-Admin-Key", key)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/blacklist/0611111111", nil)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var entry blacklisthandler.EntryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
		assert.Equal(t, "Romance scam", entry.Reason)
	})
}

func TestRouterAdminDisabledWithoutHash(t *testing.T) {
	router := NewRouter(newTestDeps(t, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouterHealthz(t *testing.T) {
	deps := newTestDeps(t, "")
	deps.HealthChecks = map[string]HealthCheck{
		"redis": func(context.Context) error { return nil },
	}
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouterHealthzDegraded(t *testing.T) {
	deps := newTestDeps(t, "")
	deps.HealthChecks = map[string]HealthCheck{
		"postgres": func(context.Context) error { return errors.New("down") },
	}
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
}
