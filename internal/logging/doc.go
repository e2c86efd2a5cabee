// Package logging provides the logging interface used across hostpulse.
// Components depend on Logger; the zerolog adapter is the production backend.
package logging
