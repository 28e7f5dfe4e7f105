package projectfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"go.eggybyte.com/scaffold/core/errors"
)

func TestGetAbsolutePath(t *testing.T) {
	pfs := NewProjectFSWithFs(afero.NewMemMapFs(), "/work")

	if got := pfs.GetAbsolutePath("src/main/java"); got != filepath.Join("/work", "src/main/java") {
		t.Errorf("unexpected relative resolution: %s", got)
	}
	if got := pfs.GetAbsolutePath("/elsewhere/x"); got != filepath.Clean("/elsewhere/x") {
		t.Errorf("absolute paths must be kept: %s", got)
	}
	if NewProjectFSWithFs(afero.NewMemMapFs(), "").GetRootDir() != "." {
		t.Error("empty root should default to current directory")
	}
}

func TestWriteFileIfNotExists(t *testing.T) {
	pfs := NewProjectFSWithFs(afero.NewMemMapFs(), "/work")
	path := "src/main/java/anderson/app/Gui.java"

	created, err := pfs.WriteFileIfNotExists(path, "first", FileMode)
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	if !created {
		t.Fatal("expected file to be created")
	}

	created, err = pfs.WriteFileIfNotExists(path, "second", FileMode)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if created {
		t.Fatal("expected existing file to be skipped")
	}

	content, err := pfs.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if content != "first" {
		t.Errorf("existing content must be preserved, got %q", content)
	}
}

func TestWriteFileIfNotExistsOnDisk(t *testing.T) {
	root := t.TempDir()
	pfs := NewProjectFS(root)

	created, err := pfs.WriteFileIfNotExists(filepath.Join("a", "b", "Foo.java"), "x", FileMode)
	if err != nil || !created {
		t.Fatalf("expected creation, got created=%v err=%v", created, err)
	}

	info, err := os.Stat(filepath.Join(root, "a", "b", "Foo.java"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != FileMode {
		t.Errorf("expected mode %o, got %o", FileMode, info.Mode().Perm())
	}
}

func TestWriteFileIfNotExistsParentIsFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "blocker"), []byte("file"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	pfs := NewProjectFS(root)
	created, err := pfs.WriteFileIfNotExists(filepath.Join("blocker", "pkg", "X.java"), "x", FileMode)
	if err == nil {
		t.Fatal("expected an error when a parent path is a regular file")
	}
	if created {
		t.Error("nothing should be reported as created")
	}
	if errors.CodeOf(err) == "" {
		t.Errorf("expected a coded error, got %v", err)
	}
}

func TestWriteFileReadOnly(t *testing.T) {
	pfs := NewProjectFSWithFs(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/work")

	_, err := pfs.WriteFileIfNotExists("x/Y.java", "content", FileMode)
	if err == nil {
		t.Fatal("expected write to a read-only filesystem to fail")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	pfs := NewProjectFSWithFs(afero.NewMemMapFs(), "/work")

	if err := pfs.WriteFile("scaffold.yaml", "a", FileMode); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := pfs.WriteFile("scaffold.yaml", "b", FileMode); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	content, err := pfs.ReadFile("scaffold.yaml")
	if err != nil || content != "b" {
		t.Errorf("expected overwritten content, got %q (%v)", content, err)
	}
}

func TestFileExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/work/src/test/java", DirMode); err != nil {
		t.Fatal(err)
	}
	pfs := NewProjectFSWithFs(fsys, "/work")

	exists, err := pfs.FileExists("src/test/java")
	if err != nil || !exists {
		t.Errorf("expected directory to exist, got %v (%v)", exists, err)
	}

	exists, err = pfs.FileExists("missing")
	if err != nil || exists {
		t.Errorf("expected missing path, got %v (%v)", exists, err)
	}

	if _, err := pfs.ReadFile("missing"); !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
