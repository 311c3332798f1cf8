// Package api implements the statecanvas HTTP layout service.
//
// The service exposes the layout pipeline over a small JSON API:
//
//	GET  /healthz    liveness check
//	POST /v1/layout  machine definition in, layout JSON out
//	POST /v1/render  machine definition in, rendered artifact out
//
// Errors are returned as JSON bodies carrying the structured error codes
// from pkg/errors, mapped to appropriate HTTP status codes.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/statecanvas/statecanvas/pkg/pipeline"
)

// Server wires the layout pipeline behind an HTTP router.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server around the given runner.
// A nil logger falls back to the default logger.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})

	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
