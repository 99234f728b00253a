package ui

import (
	"context"
	"net/http"
	"time"

	"statcheck/domain/core"
	"statcheck/internal"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// requestID attaches a unique identifier to every request
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := core.NewRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		w.Header().Set("X-Request-ID", id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID, if any
func RequestIDFromContext(ctx context.Context) core.RequestID {
	if id, ok := ctx.Value(requestIDKey).(core.RequestID); ok {
		return id
	}
	return ""
}

// requestLogger logs method, path, and duration per request
func requestLogger(logger *internal.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("%s %s request_id=%s duration=%s",
				r.Method, r.URL.Path, RequestIDFromContext(r.Context()), time.Since(start))
		})
	}
}
