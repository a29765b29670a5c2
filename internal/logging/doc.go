// Package logging constructs slog loggers for the review queue service,
// with text or JSON output and optional file duplication.
package logging
