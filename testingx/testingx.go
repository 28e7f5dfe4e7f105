// Package testingx provides testing helpers for scaffold packages.
//
// Overview:
//   - Responsibility: Testing helpers, fakes, and fixtures
//   - Key Types: MockLogger, FailingFs
//   - Concurrency Model: Thread-safe where needed
//   - Error Semantics: Test failures via testing.TB
//   - Performance Notes: Optimized for test execution
//
// Usage:
//
//	logger := testingx.NewMockLogger(t)
//	fsys := testingx.NewFailingFs(afero.NewMemMapFs(), "/work/src/main/java/p2/Y.java")
package testingx

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"go.eggybyte.com/scaffold/core/errors"
	"go.eggybyte.com/scaffold/core/log"
)

// MockLogger is a log.Logger that records entries for assertions.
type MockLogger struct {
	t       testing.TB
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  []any
}

// LogEntry represents a single log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// NewMockLogger creates a new mock logger.
func NewMockLogger(t testing.TB) *MockLogger {
	entries := make([]LogEntry, 0)
	return &MockLogger{
		t:       t,
		mu:      &sync.Mutex{},
		entries: &entries,
	}
}

// With returns a logger sharing the same entries with extra fields attached.
func (m *MockLogger) With(kv ...any) log.Logger {
	fields := append(append([]any{}, m.fields...), kv...)
	return &MockLogger{t: m.t, mu: m.mu, entries: m.entries, fields: fields}
}

// Debug logs a debug message.
func (m *MockLogger) Debug(msg string, kv ...any) {
	m.log("DEBUG", msg, nil, kv)
}

// Info logs an info message.
func (m *MockLogger) Info(msg string, kv ...any) {
	m.log("INFO", msg, nil, kv)
}

// Warn logs a warning message.
func (m *MockLogger) Warn(msg string, kv ...any) {
	m.log("WARN", msg, nil, kv)
}

// Error logs an error message.
func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.log("ERROR", msg, err, kv)
}

func (m *MockLogger) log(level, msg string, err error, kv []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(*m.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]any{}, m.fields...), kv...),
		Error:   err,
	})
}

// Entries returns a copy of all log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]LogEntry, len(*m.entries))
	copy(entries, *m.entries)
	return entries
}

// Count returns how many entries were logged with level and msg.
func (m *MockLogger) Count(level, msg string) int {
	n := 0
	for _, entry := range m.Entries() {
		if entry.Level == level && entry.Message == msg {
			n++
		}
	}
	return n
}

// AssertLogged asserts that a message was logged at the given level.
func (m *MockLogger) AssertLogged(level, msg string) {
	m.t.Helper()
	if m.Count(level, msg) == 0 {
		m.t.Errorf("Expected log message not found: level=%s msg=%q", level, msg)
	}
}

// Clear removes all log entries.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = (*m.entries)[:0]
}

// AssertError asserts that err carries the expected code.
func AssertError(t testing.TB, err error, expectedCode errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", expectedCode)
	}
	if code := errors.CodeOf(err); code != expectedCode {
		t.Errorf("Expected error code %s, got %s (%v)", expectedCode, code, err)
	}
}

// AssertNoError asserts that no error occurred.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

// FailingFs wraps an afero.Fs and fails every mutating call on the given
// paths, or anything below them, with a permission error.
type FailingFs struct {
	afero.Fs
	paths []string
}

// NewFailingFs wraps base so that writes to any of paths fail.
func NewFailingFs(base afero.Fs, paths ...string) *FailingFs {
	cleaned := make([]string, len(paths))
	for i, p := range paths {
		cleaned[i] = filepath.Clean(p)
	}
	return &FailingFs{Fs: base, paths: cleaned}
}

func (f *FailingFs) fails(name string) bool {
	name = filepath.Clean(name)
	for _, p := range f.paths {
		if name == p || strings.HasPrefix(name, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func denied(op, name string) error {
	return &fs.PathError{Op: op, Path: name, Err: fs.ErrPermission}
}

// Create fails for guarded paths.
func (f *FailingFs) Create(name string) (afero.File, error) {
	if f.fails(name) {
		return nil, denied("create", name)
	}
	return f.Fs.Create(name)
}

// Mkdir fails for guarded paths.
func (f *FailingFs) Mkdir(name string, perm os.FileMode) error {
	if f.fails(name) {
		return denied("mkdir", name)
	}
	return f.Fs.Mkdir(name, perm)
}

// MkdirAll fails for guarded paths.
func (f *FailingFs) MkdirAll(name string, perm os.FileMode) error {
	if f.fails(name) {
		return denied("mkdir", name)
	}
	return f.Fs.MkdirAll(name, perm)
}

// OpenFile fails for guarded paths when opened for writing.
func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	writing := flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_APPEND|os.O_TRUNC) != 0
	if writing && f.fails(name) {
		return nil, denied("open", name)
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// ReadFile reads a file from fsys, failing the test on error.
func ReadFile(t testing.TB, fsys afero.Fs, path string) string {
	t.Helper()
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

// WriteFile writes a fixture file to fsys, creating parents.
func WriteFile(t testing.TB, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
