// Package apperrors defines the startup-time error types of hostpulse and the
// process exit codes they map to. Per-request metric failures never surface as
// errors; see package fallible.
package apperrors
