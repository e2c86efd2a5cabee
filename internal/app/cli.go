package app

import (
	"github.com/urfave/cli/v2"

	"github.com/Dicklesworthstone/hostpulse/internal/config"
	apperrors "github.com/Dicklesworthstone/hostpulse/internal/errors"
)

// envConfigPath names the config file when --config is not given.
const envConfigPath = config.EnvPrefix + "CONFIG"

// Flag names.
const (
	flagConfig         = "config"
	flagProvider       = "provider"
	flagLogLevel       = "log-level"
	flagLogFormat      = "log-format"
	flagLogFile        = "log-file"
	flagListen         = "listen"
	flagSnapshotPath   = "snapshot-path"
	flagPrometheusPath = "prometheus-path"
	flagProcessLimit   = "process-limit"
	flagCORS           = "cors"
	flagCORSOrigin     = "cors-origin"
	flagWarmup         = "warmup"
	flagPretty         = "pretty"
	flagInterval       = "interval"
	flagURL            = "url"
)

// CLI builds the urfave/cli application.
func (a *Application) CLI() *cli.App {
	return &cli.App{
		Name:            "hostpulse",
		Usage:           "serve point-in-time snapshots of host CPU, memory, network and top processes",
		Version:         Version,
		Writer:          a.Out,
		ErrWriter:       a.ErrOut,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagConfig, Aliases: []string{"c"}, Usage: "YAML config file (env " + envConfigPath + ")", Value: "hostpulse.yaml"},
			&cli.StringFlag{Name: flagProvider, Usage: "metrics provider: gopsutil|procfs"},
			&cli.StringFlag{Name: flagLogLevel, Usage: "debug|info|warn|error"},
			&cli.StringFlag{Name: flagLogFormat, Usage: "console|json"},
			&cli.StringFlag{Name: flagLogFile, Usage: "write logs to this rotated file instead of stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "serve snapshots over HTTP",
				Action: a.serve,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagListen, Aliases: []string{"l"}, Usage: "listen address"},
					&cli.StringFlag{Name: flagSnapshotPath, Usage: "snapshot JSON route"},
					&cli.StringFlag{Name: flagPrometheusPath, Usage: "Prometheus exposition route"},
					&cli.BoolFlag{Name: flagCORS, Usage: "send CORS headers", Value: true},
					&cli.StringSliceFlag{Name: flagCORSOrigin, Usage: "allowed CORS origin, repeatable"},
					processLimitFlag(),
				},
			},
			{
				Name:   "snapshot",
				Usage:  "print one snapshot as JSON and exit",
				Action: a.snapshot,
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: flagWarmup, Usage: "interval between the priming and the reported sample", Value: defaultWarmup},
					&cli.BoolFlag{Name: flagPretty, Usage: "indent the JSON"},
					processLimitFlag(),
				},
			},
			{
				Name:   "watch",
				Usage:  "live terminal dashboard",
				Action: a.watch,
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: flagInterval, Aliases: []string{"i"}, Usage: "refresh interval"},
					&cli.StringFlag{Name: flagURL, Usage: "poll a remote snapshot endpoint instead of this host"},
					processLimitFlag(),
				},
			},
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return apperrors.NewConfigError("%v", err)
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func processLimitFlag() cli.Flag {
	return &cli.IntFlag{Name: flagProcessLimit, Aliases: []string{"n"}, Usage: "number of processes to list"}
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet(flagProvider) {
		cfg.Provider = c.String(flagProvider)
	}
	if c.IsSet(flagLogLevel) {
		cfg.Log.Level = c.String(flagLogLevel)
	}
	if c.IsSet(flagLogFormat) {
		cfg.Log.Format = c.String(flagLogFormat)
	}
	if c.IsSet(flagLogFile) {
		cfg.Log.File = c.String(flagLogFile)
	}
	if c.IsSet(flagListen) {
		cfg.Listen = c.String(flagListen)
	}
	if c.IsSet(flagSnapshotPath) {
		cfg.SnapshotPath = c.String(flagSnapshotPath)
	}
	if c.IsSet(flagPrometheusPath) {
		cfg.PrometheusPath = c.String(flagPrometheusPath)
	}
	if c.IsSet(flagProcessLimit) {
		cfg.ProcessLimit = c.Int(flagProcessLimit)
	}
	if c.IsSet(flagCORS) {
		cfg.CORS.Enabled = c.Bool(flagCORS)
	}
	if c.IsSet(flagCORSOrigin) {
		cfg.CORS.AllowedOrigins = c.StringSlice(flagCORSOrigin)
	}
	if c.IsSet(flagInterval) {
		cfg.Watch.Interval = c.Duration(flagInterval)
	}
	if c.IsSet(flagURL) {
		cfg.Watch.URL = c.String(flagURL)
	}
}
