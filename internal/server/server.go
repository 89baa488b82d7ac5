// Package server implements the HTTP API for region analysis.
//
// The API mirrors the CLI: POST a graph to /api/analyze to get the full
// decomposition, or to /api/viz/{kind} to get a rendered visualization.
// Render responses are cached keyed by the graph hash; when a store is
// configured, analyses are archived and retrievable under /api/analyses/{id}.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/klintqinami/sese-regions/pkg/cache"
	"github.com/klintqinami/sese-regions/pkg/store"
)

// renderTTL bounds how long cached render artifacts live.
const renderTTL = 24 * time.Hour

// Server holds the shared state of all API handlers.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	store  store.Store // nil disables the archive endpoints
}

// New creates a server. cache must not be nil (use cache.Nop to
// disable caching); st may be nil to run without the analysis archive.
func New(logger *log.Logger, c cache.Cache, st store.Store) *Server {
	return &Server{logger: logger, cache: c, store: st}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/viz/{kind}", s.handleViz)
		r.Get("/analyses/{id}", s.handleGetAnalysis)
	})

	return r
}

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
