package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	dErrors "truadboon/pkg/domain-errors"
	"truadboon/pkg/platform/httputil"
	"truadboon/pkg/requestcontext"
)

// RequireAdminKey guards admin endpoints with an API key supplied in the
// X-Admin-Key header. Only a bcrypt hash of the key is configured on the
// server, so a leaked environment never reveals the key itself. With no hash
// configured the admin surface is disabled outright.
func RequireAdminKey(keyHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "admin API disabled"))
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "admin key required"))
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.WarnContext(r.Context(), "admin key rejected",
					"request_id", requestcontext.RequestID(r.Context()),
					"client_ip", requestcontext.ClientIP(r.Context()),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "invalid admin key"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
