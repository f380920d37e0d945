// Package middleware provides HTTP middleware components.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

// RequestIDKey is the context key for request ID.
const RequestIDKey contextKey = "request_id"

// RequestIDHeader is the HTTP header for request ID.
const RequestIDHeader = "X-Request-ID"

// RequestID injects a unique request ID into each request.
// If the X-Request-ID header is present, it uses that value; otherwise it
// generates a new UUID. Backends behind the gateway therefore inherit the
// gateway-minted ID.
func RequestID(next http.Handler) http.Handler {
	return requestID(next, func() string { return uuid.New().String() })
}

// RequestIDULID is RequestID with ULID generation. The gateway uses it so
// the IDs it mints sort by arrival time across the whole fan-out.
func RequestIDULID(next http.Handler) http.Handler {
	return requestID(next, func() string { return ulid.Make().String() })
}

func requestID(next http.Handler, generate func() string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = generate()
		}

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
