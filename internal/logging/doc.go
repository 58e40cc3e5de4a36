// Package logging assembles the structured slog loggers used by the
// compositor.
//
// It owns the console and JSON handlers, level parsing (including the trace
// and fatal levels), output routing to stderr or a log file, and helpers that
// keep warnings uniform: every WarnWithContext record carries an event type,
// a hint and an impact. NewNop is provided for tests and wiring code that
// cannot fail.
package logging
