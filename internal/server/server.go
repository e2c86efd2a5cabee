// Package server serves host snapshots over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/hostpulse/internal/logging"
	"github.com/Dicklesworthstone/hostpulse/internal/model"
	"github.com/Dicklesworthstone/hostpulse/internal/telemetry"
)

// SnapshotSource produces the snapshot returned for each request.
type SnapshotSource interface {
	Snapshot(ctx context.Context) model.Snapshot
}

// Options configures routes and timeouts.
type Options struct {
	Addr              string
	SnapshotPath      string
	PrometheusPath    string
	CORSEnabled       bool
	AllowedOrigins    []string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// DefaultOptions matches the service's documented defaults.
func DefaultOptions() Options {
	return Options{
		Addr:              ":8080",
		SnapshotPath:      "/metrics",
		PrometheusPath:    "/metrics/prometheus",
		CORSEnabled:       true,
		AllowedOrigins:    []string{"*"},
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// Server is the HTTP front of a SnapshotSource.
type Server struct {
	opts    Options
	source  SnapshotSource
	metrics *telemetry.Metrics
	logger  logging.Logger
}

// New returns a server. A nil metrics gets a fresh registry; a nil logger discards.
func New(source SnapshotSource, metrics *telemetry.Metrics, logger logging.Logger, opts Options) *Server {
	if metrics == nil {
		metrics = telemetry.New()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Server{opts: opts, source: source, metrics: metrics, logger: logger}
}

// Handler returns the full handler chain: CORS, security headers, request
// metrics, then the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.opts.SnapshotPath, s.handleSnapshot)
	mux.HandleFunc("/health", handleHealth)
	if s.opts.PrometheusPath != "" {
		mux.Handle(s.opts.PrometheusPath, s.metrics.Handler())
	}

	var h http.Handler = mux
	h = s.metricsMiddleware(h)
	h = securityHeaders(h)
	if s.opts.CORSEnabled {
		h = cors.New(cors.Options{
			AllowedOrigins: s.opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead},
		}).Handler(h)
	}
	return h
}

// Run listens on Options.Addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// Options.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", logging.String("addr", ln.Addr().String()), logging.String("path", s.opts.SnapshotPath))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := s.opts.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s.logger.Info("shutting down", logging.Duration("timeout", timeout))
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	snap := s.source.Snapshot(r.Context())
	s.metrics.ObserveSnapshot(time.Since(start))

	body, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("encoding snapshot", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
