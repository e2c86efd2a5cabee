package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("process_limit must be between %d and %d", 1, 1000)
	if err.Error() != "process_limit must be between 1 and 1000" {
		t.Errorf("Error() = %q", err.Error())
	}
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As should find ConfigError")
	}
}

func TestProviderError(t *testing.T) {
	cause := errors.New("no /proc")
	err := ProviderError{Kind: "procfs", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("ProviderError should unwrap to its cause")
	}
	want := `metrics provider "procfs" unavailable: no /proc`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should be nil")
		}
	})

	t.Run("wraps with context", func(t *testing.T) {
		base := errors.New("base")
		err := WrapError(base, "loading %s", "config.yaml")
		if err.Error() != "loading config.yaml: base" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should match base")
		}
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"wrapped config", fmt.Errorf("startup: %w", NewConfigError("bad")), ExitErrorConfig},
		{"provider", ProviderError{Kind: "procfs", Cause: errors.New("x")}, ExitErrorProvider},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"deadline", fmt.Errorf("serve: %w", context.DeadlineExceeded), ExitErrorCanceled},
		{"generic", errors.New("other"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
