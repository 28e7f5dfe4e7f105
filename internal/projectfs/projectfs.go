// Package projectfs provides project file system operations for scaffolding.
//
// Overview:
//   - Responsibility: Resolve project paths, write files idempotently
//   - Key Types: ProjectFS over an afero.Fs
//   - Concurrency Model: Safe for concurrent use; create-if-absent uses exclusive create
//   - Error Semantics: Errors are coded with core/errors (PERMISSION_DENIED, INTERNAL, ...)
//   - Performance Notes: One stat and one exclusive open per idempotent write
//
// Usage:
//
//	pfs := projectfs.NewProjectFS(".")
//	created, err := pfs.WriteFileIfNotExists("src/main/java/app/Gui.java", content, 0o644)
package projectfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"go.eggybyte.com/scaffold/core/errors"
	"go.eggybyte.com/scaffold/internal/ui"
)

const (
	// DirMode is the permission used for created directories.
	DirMode fs.FileMode = 0o755
	// FileMode is the permission used for created files.
	FileMode fs.FileMode = 0o644
)

// ProjectFS provides file system operations rooted at a project directory.
// Relative paths are resolved against the root; absolute paths are used as is.
type ProjectFS struct {
	fs      afero.Fs
	rootDir string
	verbose bool
}

// NewProjectFS creates a project file system backed by the OS.
func NewProjectFS(rootDir string) *ProjectFS {
	return NewProjectFSWithFs(afero.NewOsFs(), rootDir)
}

// NewProjectFSWithFs creates a project file system over any afero.Fs,
// e.g. afero.NewMemMapFs() in tests.
func NewProjectFSWithFs(fsys afero.Fs, rootDir string) *ProjectFS {
	if rootDir == "" {
		rootDir = "."
	}
	return &ProjectFS{
		fs:      fsys,
		rootDir: rootDir,
	}
}

// SetVerbose enables or disables debug output of file operations.
func (p *ProjectFS) SetVerbose(enabled bool) {
	p.verbose = enabled
}

// GetRootDir returns the root directory.
func (p *ProjectFS) GetRootDir() string {
	return p.rootDir
}

// GetAbsolutePath resolves path against the root directory.
func (p *ProjectFS) GetAbsolutePath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.rootDir, path)
}

// FileExists reports whether anything exists at path.
func (p *ProjectFS) FileExists(path string) (bool, error) {
	exists, err := afero.Exists(p.fs, p.GetAbsolutePath(path))
	if err != nil {
		return false, errors.WrapFS("projectfs.stat", err)
	}
	return exists, nil
}

// ReadFile reads the content of a file.
func (p *ProjectFS) ReadFile(path string) (string, error) {
	content, err := afero.ReadFile(p.fs, p.GetAbsolutePath(path))
	if err != nil {
		return "", errors.WrapFS("projectfs.read", err)
	}
	return string(content), nil
}

// WriteFile writes content to path, creating parent directories and
// replacing any existing file.
func (p *ProjectFS) WriteFile(path, content string, mode fs.FileMode) error {
	fullPath := p.GetAbsolutePath(path)

	if err := p.fs.MkdirAll(filepath.Dir(fullPath), DirMode); err != nil {
		return errors.WrapFS("projectfs.mkdir", err)
	}
	if err := afero.WriteFile(p.fs, fullPath, []byte(content), mode); err != nil {
		return errors.WrapFS("projectfs.write", err)
	}

	p.debug("Written file: %s", path)
	return nil
}

// WriteFileIfNotExists writes content to path only if nothing exists there.
//
// Returns:
//   - bool: true if the file was created, false if it already existed
//   - error: coded file system error if directory creation or writing failed
//
// The write uses an exclusive create, so when several invocations race on
// the same path exactly one creates it and the others report false.
func (p *ProjectFS) WriteFileIfNotExists(path, content string, mode fs.FileMode) (bool, error) {
	exists, err := p.FileExists(path)
	if err != nil {
		return false, err
	}
	if exists {
		p.debug("File already exists, skipping: %s", path)
		return false, nil
	}

	fullPath := p.GetAbsolutePath(path)
	if err := p.fs.MkdirAll(filepath.Dir(fullPath), DirMode); err != nil {
		return false, errors.WrapFS("projectfs.mkdir", err)
	}

	f, err := p.fs.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			p.debug("File created concurrently, skipping: %s", path)
			return false, nil
		}
		return false, errors.WrapFS("projectfs.create", err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return false, errors.WrapFS("projectfs.write", err)
	}
	if err := f.Close(); err != nil {
		return false, errors.WrapFS("projectfs.close", err)
	}

	p.debug("Written file: %s", path)
	return true, nil
}

func (p *ProjectFS) debug(format string, args ...any) {
	if p.verbose {
		ui.Debug(format, args...)
	}
}
