package testingx

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"testing"

	"github.com/spf13/afero"

	coreerrors "go.eggybyte.com/scaffold/core/errors"
)

func TestMockLogger_Levels(t *testing.T) {
	logger := NewMockLogger(t)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error(errors.New("boom"), "error message")

	entries := logger.Entries()
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	if entries[0].Level != "DEBUG" || entries[0].Message != "debug message" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if len(entries[0].Fields) != 2 {
		t.Errorf("Expected 2 fields, got %d", len(entries[0].Fields))
	}
	if entries[3].Error == nil || entries[3].Error.Error() != "boom" {
		t.Errorf("Expected error to be recorded, got %+v", entries[3])
	}

	logger.AssertLogged("WARN", "warn message")
}

func TestMockLogger_WithSharesEntries(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With("pair", "a.b/Foo")

	child.Info("created")

	entries := logger.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected child entries to be visible on the parent, got %d", len(entries))
	}
	if entries[0].Fields[0] != "pair" {
		t.Errorf("Expected With fields first, got %v", entries[0].Fields)
	}
}

func TestMockLogger_CountAndClear(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Info("x")
	logger.Info("x")

	if n := logger.Count("INFO", "x"); n != 2 {
		t.Errorf("Expected 2, got %d", n)
	}

	logger.Clear()
	if len(logger.Entries()) != 0 {
		t.Error("Expected entries to be cleared")
	}
}

func TestMockLogger_Concurrency(t *testing.T) {
	logger := NewMockLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("concurrent")
		}()
	}
	wg.Wait()

	if n := logger.Count("INFO", "concurrent"); n != 20 {
		t.Errorf("Expected 20 entries, got %d", n)
	}
}

func TestAssertError(t *testing.T) {
	AssertError(t, coreerrors.New(coreerrors.CodeInvalidArgument, "bad"), coreerrors.CodeInvalidArgument)
	AssertNoError(t, nil)
}

func TestFailingFs(t *testing.T) {
	base := afero.NewMemMapFs()
	fsys := NewFailingFs(base, "/work/blocked")

	if err := fsys.MkdirAll("/work/open/dir", 0o755); err != nil {
		t.Fatalf("unguarded MkdirAll failed: %v", err)
	}

	err := fsys.MkdirAll("/work/blocked/dir", 0o755)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("Expected permission error, got %v", err)
	}

	if _, err := fsys.OpenFile("/work/blocked/X.java", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644); !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("Expected permission error on write, got %v", err)
	}

	if _, err := fsys.Create("/work/blockedness/X.java"); err != nil {
		t.Errorf("Sibling with shared prefix must not be guarded: %v", err)
	}

	WriteFile(t, base, "/work/blocked/existing.txt", "data")
	if got := ReadFile(t, fsys, "/work/blocked/existing.txt"); got != "data" {
		t.Errorf("Reads must pass through, got %q", got)
	}
}
