// Package logging builds the process-wide slog.Logger used by the CLI,
// with human-readable console output and flag-driven verbosity.
package logging
