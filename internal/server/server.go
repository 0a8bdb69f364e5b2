// Package server exposes the fingerprint pipeline over HTTP. It is the
// request-handling collaborator around the audit core: it accepts the raw
// prompt, selects template and key versions, and returns the fingerprint for
// the caller to persist or transmit.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghostgate/ghostseal/internal/budget"
	"github.com/ghostgate/ghostseal/internal/secrets"
	"github.com/ghostgate/ghostseal/internal/snapshot"
)

type Server struct {
	Router *chi.Mux
	Port   int

	httpServer      *http.Server
	logger          *slog.Logger
	snapshot        snapshot.Config
	templateVersion string
	resolver        *secrets.Resolver
	checker         *budget.Checker
}

// New builds the router and middleware chain around the fingerprint handlers.
func New(port int, templateVersion string, resolver *secrets.Resolver, logger *slog.Logger) *Server {
	s := &Server{
		Port:            port,
		logger:          logger,
		snapshot:        snapshot.Current,
		templateVersion: templateVersion,
		resolver:        resolver,
		checker:         budget.NewChecker(snapshot.Current),
	}

	r := chi.NewRouter()

	// Apply middleware in order
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(TimeoutMiddleware(time.Duration(snapshot.Current.TimeoutMS) * time.Millisecond))
	r.Use(middleware.Recoverer)

	// Wrap with OpenTelemetry HTTP instrumentation
	r.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "ghostseal")
	})

	r.Post("/v1/fingerprints", s.HandleFingerprint)
	r.Get("/v1/snapshot", s.HandleSnapshot)
	r.Get("/healthz", s.HandleHealth)

	s.Router = r
	return s
}

func (s *Server) Start() error {
	s.logger.Info("starting server", slog.Int("port", s.Port))
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Port),
		Handler: s.Router,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight requests
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
