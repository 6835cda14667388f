// Package httptransport assembles the HTTP surface: middleware chain, API
// routes, health and metrics endpoints. It stays thin; feature handlers own
// their request and response shapes.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	blacklisthandler "truadboon/internal/blacklist/handler"
	foundationhandler "truadboon/internal/foundation/handler"
	"truadboon/internal/platform/middleware"
	verificationhandler "truadboon/internal/verification/handler"
	verifyloghandler "truadboon/internal/verifylog/handler"
	"truadboon/pkg/platform/httputil"
)

// HealthCheck probes one dependency. A nil error means healthy.
type HealthCheck func(ctx context.Context) error

// Deps carries everything the router needs. Nil admin handlers are allowed
// while the admin surface is disabled.
type Deps struct {
	Logger *slog.Logger

	Verification *verificationhandler.Handler
	Foundations  *foundationhandler.Handler
	Blacklist    *blacklisthandler.Handler
	VerifyLogs   *verifyloghandler.Handler

	// AdminKeyHash guards mutating and audit endpoints; empty disables them.
	AdminKeyHash string
	// JWTSigningKey enables optional bearer-token user attribution.
	JWTSigningKey string

	// HealthChecks run on /healthz, keyed by dependency name.
	HealthChecks map[string]HealthCheck
}

// NewRouter wires all endpoints behind the shared middleware chain.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.OptionalUser(d.JWTSigningKey, d.Logger))

	r.Route("/api", func(api chi.Router) {
		d.Verification.Register(api)
		d.Foundations.Register(api)
		d.Blacklist.Register(api)

		api.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdminKey(d.AdminKeyHash, d.Logger))
			d.Blacklist.RegisterAdmin(admin)
			d.VerifyLogs.RegisterAdmin(admin)
		})
	})

	r.Get("/healthz", healthHandler(d.HealthChecks))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				deps[name] = "unhealthy"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "ok"
		}

		body := map[string]any{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(deps) > 0 {
			body["dependencies"] = deps
		}
		httputil.WriteJSON(w, status, body)
	}
}
