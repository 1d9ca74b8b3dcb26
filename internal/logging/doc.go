// Package logging assembles structured slog loggers and formatting helpers used
// across imagestage.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and library callers that do
// not configure logging.
package logging
