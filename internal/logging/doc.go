// Package logging assembles the structured slog loggers used by the
// Concord CLI.
//
// It owns the console and JSON handlers and centralizes level and format
// plumbing so commands emit diagnostics with a consistent shape. The
// console handler colors level tags only when the sink is a terminal. A
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
