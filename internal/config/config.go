package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Dicklesworthstone/hostpulse/internal/errors"
	"github.com/Dicklesworthstone/hostpulse/internal/platform"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HOSTPULSE_"

// MaxProcessLimit bounds process_limit.
const MaxProcessLimit = 1000

// Config carries runtime options for hostpulse.
type Config struct {
	Listen            string        `yaml:"listen"`
	SnapshotPath      string        `yaml:"snapshot_path"`
	PrometheusPath    string        `yaml:"prometheus_path"`
	Provider          string        `yaml:"provider"`
	ProcessLimit      int           `yaml:"process_limit"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	CORS              CORS          `yaml:"cors"`
	Watch             Watch         `yaml:"watch"`
	Log               Log           `yaml:"log"`
}

// CORS controls cross-origin access to the snapshot endpoint.
type CORS struct {
	Enabled        bool     `yaml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Watch configures the terminal dashboard.
type Watch struct {
	Interval time.Duration `yaml:"interval"`
	// URL of a remote snapshot endpoint; empty samples the local host.
	URL string `yaml:"url"`
}

// Log configures logging output.
type Log struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

func Default() Config {
	return Config{
		Listen:            ":8080",
		SnapshotPath:      "/metrics",
		PrometheusPath:    "/metrics/prometheus",
		Provider:          platform.KindGopsutil,
		ProcessLimit:      12,
		ShutdownTimeout:   5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		CORS:              CORS{Enabled: true, AllowedOrigins: []string{"*"}},
		Watch:             Watch{Interval: time.Second},
		Log:               Log{Level: "info", Format: "console", MaxSizeMB: 100, MaxBackups: 3},
	}
}

// Load returns defaults overlaid with the YAML file at path (if any) and then
// with HOSTPULSE_* variables from lookup. A missing file is not an error.
// The result is not validated; flags may still change it.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, apperrors.NewConfigError("reading config %s: %v", path, err)
		default:
			if err := decodeYAML(data, &cfg); err != nil {
				return cfg, apperrors.NewConfigError("parsing config %s: %v", path, err)
			}
		}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first invalid setting as an apperrors.ConfigError.
func (c Config) Validate() error {
	switch {
	case c.Listen == "":
		return apperrors.NewConfigError("listen address must not be empty")
	case !strings.HasPrefix(c.SnapshotPath, "/"):
		return apperrors.NewConfigError("snapshot_path %q must start with /", c.SnapshotPath)
	case c.PrometheusPath != "" && !strings.HasPrefix(c.PrometheusPath, "/"):
		return apperrors.NewConfigError("prometheus_path %q must start with /", c.PrometheusPath)
	case c.PrometheusPath == c.SnapshotPath:
		return apperrors.NewConfigError("prometheus_path and snapshot_path must differ")
	case c.ProcessLimit < 1 || c.ProcessLimit > MaxProcessLimit:
		return apperrors.NewConfigError("process_limit %d out of range [1, %d]", c.ProcessLimit, MaxProcessLimit)
	case !validProvider(c.Provider):
		return apperrors.NewConfigError("provider %q unknown, want one of %v", c.Provider, platform.Kinds())
	case c.Watch.Interval <= 0:
		return apperrors.NewConfigError("watch.interval must be positive")
	case c.ShutdownTimeout < 0 || c.ReadHeaderTimeout < 0:
		return apperrors.NewConfigError("timeouts must not be negative")
	case c.CORS.Enabled && len(c.CORS.AllowedOrigins) == 0:
		return apperrors.NewConfigError("cors.allowed_origins must not be empty when cors is enabled")
	}
	return nil
}

func validProvider(kind string) bool {
	for _, k := range platform.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}
