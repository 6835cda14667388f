package middleware

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"truadboon/pkg/requestcontext"
)

// ClientMetadata extracts the client IP and User-Agent and derives the request
// channel recorded in verification logs: MOBILE for phone browsers, API for
// programmatic clients, WEB otherwise. Apply early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")

		ctx := r.Context()
		ctx = requestcontext.WithClientMetadata(ctx, clientIPFromRequest(r), ua)
		ctx = requestcontext.WithSource(ctx, sourceFromUserAgent(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sourceFromUserAgent(ua string) string {
	if ua == "" {
		return "API"
	}
	parsed := useragent.New(ua)
	if browser, _ := parsed.Browser(); browser == "" && !parsed.Mobile() {
		// curl, SDKs and monitoring agents identify themselves without a
		// browser signature.
		return "API"
	}
	if parsed.Mobile() {
		return "MOBILE"
	}
	return "WEB"
}

// clientIPFromRequest extracts the real client IP, handling proxies and load
// balancers ahead of us.
func clientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs; the first is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" ("[::1]:port" for IPv6).
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}
