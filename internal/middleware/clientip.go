package middleware

import (
	"context"
	"net/http"
)

const (
	// ClientIPContextKey is the context key for storing the client IP address
	ClientIPContextKey contextKey = "client_ip"
)

// WithClientIP returns middleware that resolves the client IP once and
// stores it in the context, so the rate limiter and request logs key
// off the same address. Resolution uses GetClientIP from ratelimit.go,
// which checks proxy headers (X-Forwarded-For, X-Real-IP) before
// falling back to RemoteAddr.
//
// In production the reverse proxy must own these headers; they are
// spoofable on direct access.
func WithClientIP() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ClientIPContextKey, GetClientIP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientIPFromContext retrieves the client IP address from the context.
// Returns an empty string if the middleware was not applied. For direct
// access from a request, use GetClientIP(r) instead.
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(ClientIPContextKey).(string); ok {
		return ip
	}
	return ""
}
