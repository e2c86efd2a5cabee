package app

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Dicklesworthstone/hostpulse/internal/config"
	"github.com/Dicklesworthstone/hostpulse/internal/fallible"
	"github.com/Dicklesworthstone/hostpulse/internal/logging"
	"github.com/Dicklesworthstone/hostpulse/internal/sampler"
	"github.com/Dicklesworthstone/hostpulse/internal/server"
	"github.com/Dicklesworthstone/hostpulse/internal/telemetry"
	"github.com/Dicklesworthstone/hostpulse/internal/ui"
)

const defaultWarmup = 500 * time.Millisecond

// newSampler builds the provider named in cfg and a sampler over it.
func (a *Application) newSampler(ctx context.Context, cfg config.Config, reporter fallible.Reporter) (*sampler.Sampler, error) {
	provider, err := a.NewProvider(ctx, cfg.Provider)
	if err != nil {
		return nil, err
	}
	return sampler.New(ctx, provider,
		sampler.WithReporter(reporter),
		sampler.WithProcessLimit(cfg.ProcessLimit),
	), nil
}

func (a *Application) serve(c *cli.Context) error {
	cfg, err := a.resolveConfig(c)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := telemetry.New()
	s, err := a.newSampler(ctx, cfg, fallible.Multi(metrics, logReporter(logger.With("sampler"))))
	if err != nil {
		logger.Error("provider unavailable", err, logging.String("provider", cfg.Provider))
		return err
	}
	logger.Info("sampler ready",
		logging.String("provider", cfg.Provider),
		logging.Int("process_limit", s.ProcessLimit()),
		logging.String("version", Version),
	)

	srv := server.New(s, metrics, logger.With("server"), server.Options{
		Addr:              cfg.Listen,
		SnapshotPath:      cfg.SnapshotPath,
		PrometheusPath:    cfg.PrometheusPath,
		CORSEnabled:       cfg.CORS.Enabled,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
	})
	return srv.Run(ctx)
}

func (a *Application) snapshot(c *cli.Context) error {
	cfg, err := a.resolveConfig(c)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := c.Context
	s, err := a.newSampler(ctx, cfg, logReporter(logger.With("sampler")))
	if err != nil {
		return err
	}

	// The first snapshot only primes the network baseline.
	s.Snapshot(ctx)
	if warmup := c.Duration(flagWarmup); warmup > 0 {
		t := time.NewTimer(warmup)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		}
	}
	snap := s.Snapshot(ctx)

	enc := json.NewEncoder(a.Out)
	if c.Bool(flagPretty) {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(snap)
}

func (a *Application) watch(c *cli.Context) error {
	cfg, err := a.resolveConfig(c)
	if err != nil {
		return err
	}
	// The dashboard owns the terminal; only a log file receives logs.
	logger, closer, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	var (
		source ui.Source
		label  string
	)
	if cfg.Watch.URL != "" {
		source = ui.NewClient(cfg.Watch.URL, cfg.Watch.Interval+5*time.Second)
		label = cfg.Watch.URL
	} else {
		s, err := a.newSampler(c.Context, cfg, logReporter(logger.With("sampler")))
		if err != nil {
			return err
		}
		source = ui.Local(s.Snapshot)
		label = "local (" + cfg.Provider + ")"
	}
	logger.Info("watching", logging.String("source", label), logging.Duration("interval", cfg.Watch.Interval))
	return ui.Run(source, label, cfg.Watch.Interval)
}
