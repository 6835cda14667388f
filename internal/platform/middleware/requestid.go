package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"truadboon/pkg/requestcontext"
)

// RequestID assigns every request a correlation ID, honoring an inbound
// X-Request-ID from a trusted proxy when present. The ID is echoed back in the
// response header and injected into the context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
