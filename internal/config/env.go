package config

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/Dicklesworthstone/hostpulse/internal/errors"
)

// envOverride maps one variable (without EnvPrefix) onto a Config field.
type envOverride struct {
	key   string
	apply func(*Config, string) error
}

var envOverrides = []envOverride{
	{"LISTEN", func(c *Config, v string) error { c.Listen = v; return nil }},
	{"SNAPSHOT_PATH", func(c *Config, v string) error { c.SnapshotPath = v; return nil }},
	{"PROMETHEUS_PATH", func(c *Config, v string) error { c.PrometheusPath = v; return nil }},
	{"PROVIDER", func(c *Config, v string) error { c.Provider = v; return nil }},
	{"PROCESS_LIMIT", func(c *Config, v string) error { return parseInt(v, &c.ProcessLimit) }},
	{"SHUTDOWN_TIMEOUT", func(c *Config, v string) error { return parseDuration(v, &c.ShutdownTimeout) }},
	{"READ_HEADER_TIMEOUT", func(c *Config, v string) error { return parseDuration(v, &c.ReadHeaderTimeout) }},
	{"CORS", func(c *Config, v string) error { return parseBool(v, &c.CORS.Enabled) }},
	{"CORS_ORIGINS", func(c *Config, v string) error { c.CORS.AllowedOrigins = splitList(v); return nil }},
	{"WATCH_INTERVAL", func(c *Config, v string) error { return parseDuration(v, &c.Watch.Interval) }},
	{"WATCH_URL", func(c *Config, v string) error { c.Watch.URL = v; return nil }},
	{"LOG_LEVEL", func(c *Config, v string) error { c.Log.Level = v; return nil }},
	{"LOG_FORMAT", func(c *Config, v string) error { c.Log.Format = v; return nil }},
	{"LOG_FILE", func(c *Config, v string) error { c.Log.File = v; return nil }},
}

// EnvKeys lists every recognised variable, prefix included.
func EnvKeys() []string {
	keys := make([]string, 0, len(envOverrides))
	for _, o := range envOverrides {
		keys = append(keys, EnvPrefix+o.key)
	}
	return keys
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for _, o := range envOverrides {
		v, ok := lookup(EnvPrefix + o.key)
		if !ok || v == "" {
			continue
		}
		if err := o.apply(cfg, v); err != nil {
			return apperrors.NewConfigError("%s%s: %v", EnvPrefix, o.key, err)
		}
	}
	return nil
}

func parseInt(v string, dst *int) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// parseDuration also accepts a bare number of seconds.
func parseDuration(v string, dst *time.Duration) error {
	v = strings.TrimSpace(v)
	d, err := time.ParseDuration(v)
	if err != nil {
		var err2 error
		if d, err2 = time.ParseDuration(v + "s"); err2 != nil {
			return err
		}
	}
	*dst = d
	return nil
}

// parseBool accepts true/1/yes and false/0/no, case-insensitively.
func parseBool(v string, dst *bool) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		*dst = true
	case "false", "0", "no":
		*dst = false
	default:
		return strconv.ErrSyntax
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
