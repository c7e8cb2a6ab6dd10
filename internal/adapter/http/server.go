package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MapSource provides the last built map.
type MapSource interface {
	Page() []byte
	Zones() []domain.ZoneSummary
}

// Server exposes the rendered map plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	maps       MapSource
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /, /zones, /healthz, /readyz, and /metrics routes.
func NewServer(addr string, maps MapSource, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		maps:   maps,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handleMap)
	mux.HandleFunc("GET /zones", s.handleZones)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleMap(w http.ResponseWriter, _ *http.Request) {
	page := s.maps.Page()
	if page == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "map not built yet"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		s.logger.Warn("write map page failed", "error", err)
	}
}

func (s *Server) handleZones(w http.ResponseWriter, _ *http.Request) {
	zones := s.maps.Zones()
	if zones == nil {
		zones = []domain.ZoneSummary{}
	}
	writeJSON(w, http.StatusOK, zones)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
