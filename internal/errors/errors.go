package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorConfig   = 4
	ExitErrorProvider = 5
	ExitErrorCanceled = 130
)

// ConfigError represents invalid configuration from a file, the environment or flags.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ProviderError reports that a platform metrics provider could not be constructed.
// It is the only condition escalated to the operator; it happens at startup.
type ProviderError struct {
	Kind  string
	Cause error
}

func (e ProviderError) Error() string {
	return fmt.Sprintf("metrics provider %q unavailable: %v", e.Kind, e.Cause)
}

// Unwrap returns the underlying cause.
func (e ProviderError) Unwrap() error { return e.Cause }

// WrapError adds context to err. It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError checks for context cancellation or deadline errors.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error returned from a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	var provErr ProviderError
	if errors.As(err, &provErr) {
		return ExitErrorProvider
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	return ExitErrorGeneric
}
