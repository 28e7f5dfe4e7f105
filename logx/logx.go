// Package logx provides the slog-based implementation of core/log.Logger.
//
// Overview:
//   - Responsibility: Structured logging for the scaffold CLI in logfmt or JSON
//   - Key Types: Logger, Options, Option
//   - Concurrency Model: All loggers are safe for concurrent use
//   - Error Semantics: Write failures are dropped
//   - Performance Notes: Keys are sorted in logfmt mode for stable diffs
//
// Usage:
//
//	logger := logx.New(logx.WithFormat(logx.FormatJSON), logx.WithLevel(slog.LevelDebug))
//	logger.Info("generation finished", log.Int("created", 4))
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.eggybyte.com/scaffold/core/log"
	"go.eggybyte.com/scaffold/logx/internal"
)

// Format specifies the output format for logs.
type Format string

const (
	// FormatLogfmt outputs key=value pairs.
	FormatLogfmt Format = "logfmt"
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = "json"
)

// Options configures the logger behavior.
type Options struct {
	Format           Format     // Output format: logfmt or json
	Level            slog.Level // Minimum log level
	Color            bool       // Colorize the level field (logfmt only)
	Writer           io.Writer  // Output writer (default: os.Stderr)
	DisableTimestamp bool       // Omit timestamps
}

// Option configures logger behavior.
type Option func(*Options)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithColor enables colorization of the level field.
func WithColor(enabled bool) Option {
	return func(o *Options) {
		o.Color = enabled
	}
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

// WithTimestamp toggles the time field.
func WithTimestamp(enabled bool) Option {
	return func(o *Options) {
		o.DisableTimestamp = !enabled
	}
}

// Logger implements log.Logger on top of slog.
type Logger struct {
	slog *slog.Logger
}

// New creates a Logger with the given options.
func New(opts ...Option) log.Logger {
	options := Options{
		Format:           FormatLogfmt,
		Level:            slog.LevelInfo,
		Writer:           os.Stderr,
		DisableTimestamp: true,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Writer == nil {
		options.Writer = os.Stderr
	}

	var handler slog.Handler
	switch options.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(options.Writer, &slog.HandlerOptions{
			Level: options.Level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if options.DisableTimestamp && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		})
	default:
		handler = internal.NewHandler(options.Writer, internal.Options{
			Level:            options.Level,
			Color:            options.Color,
			DisableTimestamp: options.DisableTimestamp,
		})
	}

	return &Logger{slog: slog.New(handler)}
}

// With returns a Logger with the given key-value pairs attached.
func (l *Logger) With(kv ...any) log.Logger {
	return &Logger{slog: l.slog.With(internal.KVToArgs(kv)...)}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, kv ...any) {
	l.slog.Debug(msg, internal.KVToArgs(kv)...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, kv ...any) {
	l.slog.Info(msg, internal.KVToArgs(kv)...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, kv ...any) {
	l.slog.Warn(msg, internal.KVToArgs(kv)...)
}

// Error logs an error message with the error attached under "error".
func (l *Logger) Error(err error, msg string, kv ...any) {
	args := internal.KVToArgs(kv)
	if err != nil {
		args = append([]any{"error", err}, args...)
	}
	l.slog.Log(context.Background(), slog.LevelError, msg, args...)
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatLogfmt:
		return FormatLogfmt, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatLogfmt, fmt.Errorf("unknown log format %q", s)
	}
}
