package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/statecanvas/statecanvas/pkg/observability"
)

// requestIDHeader carries the request ID on responses and may be supplied
// by callers to correlate requests across services.
const requestIDHeader = "X-Request-ID"

// ctxKey is the type for context keys used in this package.
type ctxKey int

// requestIDKey is the context key for the request ID.
const requestIDKey ctxKey = 0

// requestIDMiddleware assigns each request a UUID unless the caller
// supplied one, and echoes it on the response.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestID returns the request ID from ctx, or an empty string.
func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs each request and notifies the API hooks.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", duration.Round(time.Millisecond),
			"request_id", requestID(r.Context()),
		)
	})
}
