// Package api implements the diagramd HTTP layout service.
//
// The server exposes the layout engine over a small JSON API:
//
//	POST /v1/layout       compute a layout for explicit options
//	POST /v1/layout/auto  compute a layout from a diagram category
//	GET  /healthz         liveness probe
//
// Requests carry the node/edge arrays of the diagram canvas plus the
// external options surface; responses return the same edge list unchanged
// and a node list with updated positions. Invalid graphs are rejected with
// 422 and a message identifying every dangling edge; unknown algorithm
// identifiers never fail a request - they resolve to the documented
// fallback.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/diagramd/diagramd/pkg/observability"
	"github.com/diagramd/diagramd/pkg/pipeline"
)

// Server is the diagramd API server.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	router  chi.Router
	spacing pipeline.SpacingOptions
}

// NewServer creates a server around the given runner.
// A nil logger falls back to the default charmbracelet logger.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// SetSpacingDefaults sets server-wide spacing applied when a request omits
// its own. Zero fields keep the engine defaults.
func (s *Server) SetSpacingDefaults(spacing pipeline.SpacingOptions) {
	s.spacing = spacing
}

// ListenAndServe runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Info("listening", "addr", addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/layout/auto", s.handleAutoLayout)
	})
	return r
}

// requestIDKey is the context key under which the request ID is stored.
type requestIDKey struct{}

// requestID assigns each request a UUID, echoed in the X-Request-ID header.
// An incoming X-Request-ID is preserved so IDs propagate across services.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests emits one structured log line per request and feeds the HTTP
// observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration.Round(time.Millisecond),
			"request_id", r.Context().Value(requestIDKey{}))
	})
}
