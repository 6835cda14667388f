package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"truadboon/pkg/requestcontext"
)

// OptionalUser extracts the user ID from a bearer token when one is presented.
// Verification endpoints are public, but authenticated requests attribute
// their verification log entries to the user. An invalid token downgrades the
// request to anonymous rather than rejecting it.
func OptionalUser(signingKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if signingKey == "" || !strings.HasPrefix(auth, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(auth, "Bearer ")
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(signingKey), nil
			})
			if err != nil || !token.Valid {
				logger.DebugContext(r.Context(), "bearer token ignored",
					"request_id", requestcontext.RequestID(r.Context()),
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				ctx := requestcontext.WithUserID(r.Context(), sub)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
