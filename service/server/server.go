// Package server exposes the pipeline's operational surface over HTTP:
// health, the live stats snapshot, and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/brojonat/blockpulse/service/metrics"
	"github.com/brojonat/blockpulse/service/stats"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Snapshotter provides the current stats snapshot. Implemented by
// stats.Aggregator.
type Snapshotter interface {
	Snapshot() stats.Snapshot
}

// Server represents the HTTP server for the pipeline.
type Server struct {
	addr    string
	stats   Snapshotter
	metrics *metrics.Metrics
	logger  *slog.Logger
	server  *http.Server
}

// New creates a new HTTP server with the given dependencies.
// The metrics is optional - if nil, the /metrics endpoint serves the
// default registry and no request metrics are recorded.
func New(addr string, snap Snapshotter, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		addr:    addr,
		stats:   snap,
		metrics: m,
		logger:  logger,
	}
}

// Start starts the HTTP server. It blocks until the server exits.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", handleHealth())
	mux.Handle("GET /stats", metrics.HTTPMetricsMiddleware(s.metrics, "/stats")(handleStats(s.stats, s.logger)))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("HTTP server listening", "addr", s.addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func handleHealth() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"status":"ok"}`)
	})
}

func handleStats(snap Snapshotter, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap.Snapshot()); err != nil {
			logger.Error("failed to encode stats snapshot", "error", err)
		}
	})
}
