// Package log defines the structured logging interface used across scaffold.
//
// Overview:
//   - Responsibility: Keep packages independent of a concrete logger
//   - Key Types: Logger interface with key-value logging
//   - Concurrency Model: Implementations must be safe for concurrent use
//   - Error Semantics: Error takes the error as its first parameter
//   - Performance Notes: Nop discards everything without allocating
//
// Usage:
//
//	logger.Info("file created", log.Str("path", p), log.Str("kind", "main"))
package log

import "time"

// Logger defines a structured logging interface compatible with slog concepts.
// Implementations must be safe for concurrent use.
type Logger interface {
	// With returns a Logger with the given key-value pairs attached.
	With(kv ...any) Logger

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, kv ...any)

	// Info logs an informational message with optional key-value pairs.
	Info(msg string, kv ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, kv ...any)

	// Error logs an error message with the error and optional key-value pairs.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair.
func Int(k string, v int) any {
	return []any{k, v}
}

// Dur creates a duration key-value pair.
func Dur(k string, v time.Duration) any {
	return []any{k, v}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (n nopLogger) With(kv ...any) Logger { return n }
func (nopLogger) Debug(msg string, kv ...any) {}
func (nopLogger) Info(msg string, kv ...any) {}
func (nopLogger) Warn(msg string, kv ...any) {}
func (nopLogger) Error(err error, msg string, kv ...any) {}
