// Package ui provides unified output formatting for the scaffold CLI.
//
// Overview:
//   - Responsibility: Human-readable and JSON output for the user
//   - Key Types: OutputLevel, Message
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: Encoding failures are reported on stderr
//   - Performance Notes: Unbuffered, one write per message
//
// Usage:
//
//	ui.Info("Scaffolding %d pairs", n)
//	ui.Error("Generation failed: %v", err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	verbose    bool
	jsonOutput bool
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	mu         sync.RWMutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

// Message represents a structured output message.
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Data      any         `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug messages.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetJSONOutput enables JSON-formatted output.
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// JSONOutput reports whether JSON output is enabled.
func JSONOutput() bool {
	mu.RLock()
	defer mu.RUnlock()
	return jsonOutput
}

// SetOutput redirects standard and error output, returning a function
// that restores the previous writers.
func SetOutput(out, errOut io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	return func() {
		mu.Lock()
		defer mu.Unlock()
		stdout, stderr = prevOut, prevErr
	}
}

// Stdout returns the current standard output writer.
func Stdout() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return stdout
}

func output(level OutputLevel, data any, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	out, errOut := stdout, stderr
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)

	if useJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		message := Message{Level: level, Text: text, Data: data, Timestamp: time.Now()}
		if err := encoder.Encode(message); err != nil {
			fmt.Fprintf(errOut, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	writer := out
	if level == LevelError {
		writer = errOut
	}

	var prefix string
	switch level {
	case LevelDebug:
		prefix = "🔍 DEBUG:"
	case LevelInfo:
		prefix = "ℹ️  INFO:"
	case LevelWarning:
		prefix = "⚠️  WARN:"
	case LevelError:
		prefix = "❌ ERROR:"
	case LevelSuccess:
		prefix = "✅ SUCCESS:"
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a debug message, shown only in verbose mode.
func Debug(format string, args ...any) {
	output(LevelDebug, nil, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...any) {
	output(LevelInfo, nil, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...any) {
	output(LevelWarning, nil, format, args...)
}

// Error outputs an error message to stderr.
func Error(format string, args ...any) {
	output(LevelError, nil, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...any) {
	output(LevelSuccess, nil, format, args...)
}

// Result outputs a message carrying structured data. In JSON mode the data
// is embedded in the message; otherwise only the text is printed.
func Result(level OutputLevel, data any, format string, args ...any) {
	output(level, data, format, args...)
}
