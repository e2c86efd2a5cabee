// Package app wires configuration, logging, the metrics provider, the
// sampler and the front ends into the hostpulse command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Dicklesworthstone/hostpulse/internal/config"
	apperrors "github.com/Dicklesworthstone/hostpulse/internal/errors"
	"github.com/Dicklesworthstone/hostpulse/internal/fallible"
	"github.com/Dicklesworthstone/hostpulse/internal/logging"
	"github.com/Dicklesworthstone/hostpulse/internal/platform"
)

// Version is overridden at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// ProviderFactory builds the platform provider named kind.
type ProviderFactory func(ctx context.Context, kind string) (platform.Provider, error)

// Application represents the hostpulse application instance.
type Application struct {
	Out         io.Writer
	ErrOut      io.Writer
	Env         func(string) (string, bool)
	NewProvider ProviderFactory
}

// Option configures an Application during construction.
type Option func(*Application)

// WithProviderFactory replaces platform.New.
func WithProviderFactory(f ProviderFactory) Option {
	return func(a *Application) { a.NewProvider = f }
}

// WithEnv replaces os.LookupEnv for HOSTPULSE_* overrides.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(a *Application) { a.Env = lookup }
}

// New creates an Application writing to out and errOut.
func New(out, errOut io.Writer, opts ...Option) *Application {
	a := &Application{Out: out, ErrOut: errOut, Env: os.LookupEnv, NewProvider: platform.New}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command line args (without the program name) and
// returns the process exit code.
func (a *Application) Run(ctx context.Context, args []string) int {
	err := a.CLI().RunContext(ctx, append([]string{"hostpulse"}, args...))
	if err != nil {
		fmt.Fprintf(a.ErrOut, "hostpulse: %v\n", err)
	}
	return apperrors.ExitCode(err)
}

// resolveConfig layers defaults, the config file, HOSTPULSE_* variables and
// explicitly set flags, then validates the result.
func (a *Application) resolveConfig(c *cli.Context) (config.Config, error) {
	path := c.String(flagConfig)
	if !c.IsSet(flagConfig) {
		if v, ok := a.Env(envConfigPath); ok && v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path, a.Env)
	if err != nil {
		return cfg, err
	}
	applyFlags(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. quiet discards console
// output, leaving only a configured log file.
func newLogger(cfg config.Config, quiet bool) (*logging.ZerologAdapter, io.Closer, error) {
	if quiet && cfg.Log.File == "" {
		return logging.Nop(), nopCloser{}, nil
	}
	l, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return nil, nil, apperrors.NewConfigError("log: %v", err)
	}
	return l, closer, nil
}

// logReporter logs degraded reads at debug level; they are expected.
func logReporter(l logging.Logger) fallible.Reporter {
	return fallible.ReporterFunc(func(source string, err error) {
		l.Debug("provider read failed", logging.String("source", source), logging.Err(err))
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
