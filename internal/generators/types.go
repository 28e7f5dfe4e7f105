// Package generators provides the paired source/test scaffold generator.
//
// Overview:
//   - Responsibility: Enumerate package x class pairs, derive paths, write missing files
//   - Key Types: Pair, Layout, Request, Generator, Report
//   - Concurrency Model: Sequential generation; stateless and safe for concurrent use
//   - Error Semantics: Invalid identifiers fail fast; write failures are per entry
//   - Performance Notes: One stat and at most one exclusive create per path
//
// Usage:
//
//	gen := generators.NewGenerator(projectfs.NewProjectFS("."))
//	report, err := gen.Generate(ctx, generators.Request{
//	    Packages: []string{"anderson.app"},
//	    Classes:  []string{"Gui", "Cli"},
//	})
package generators

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"go.eggybyte.com/scaffold/internal/ident"
	"go.eggybyte.com/scaffold/internal/templates"
)

// Pair is one (package, class) combination.
type Pair struct {
	Package string `json:"package"`
	Class   string `json:"class"`
}

// String returns the fully qualified class name.
func (p Pair) String() string {
	return p.Package + "." + p.Class
}

// Layout locates generated files on disk.
type Layout struct {
	SourceRoot string
	TestRoot   string
	Language   ident.Language
}

// PackagePath converts a dotted package name to a relative directory
// using the host path separator.
func PackagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", string(filepath.Separator))
}

// MainPath returns <source-root>/<package-path>/<Class><ext>.
func (l Layout) MainPath(p Pair) string {
	return filepath.Join(l.SourceRoot, PackagePath(p.Package), p.Class+l.Language.Extension())
}

// TestPath returns the test path mirroring MainPath under the test root.
func (l Layout) TestPath(p Pair) string {
	return TestPathFor(l.MainPath(p), l.SourceRoot, l.TestRoot)
}

// TestPathFor re-roots mainPath's directory from sourceRoot to testRoot
// and suffixes the base name with "Test", keeping the extension.
func TestPathFor(mainPath, sourceRoot, testRoot string) string {
	dir := filepath.Dir(mainPath)
	rel, err := filepath.Rel(sourceRoot, dir)
	if err != nil {
		rel = dir
	}

	ext := filepath.Ext(mainPath)
	base := strings.TrimSuffix(filepath.Base(mainPath), ext)
	return filepath.Join(testRoot, rel, base+templates.TestSuffix+ext)
}

// Target is one file to scaffold: a pair, which file of it, and where.
type Target struct {
	Pair Pair           `json:"pair"`
	Kind templates.Kind `json:"kind"`
	Path string         `json:"path"`
}

// Outcome is the result of scaffolding one target.
type Outcome string

const (
	Created Outcome = "created"
	Skipped Outcome = "skipped"
	Failed  Outcome = "failed"
)

// Outcomes lists all outcomes in display order.
var Outcomes = []Outcome{Created, Skipped, Failed}

// Entry is one line of a generation report.
type Entry struct {
	Target
	Outcome Outcome
	Err     error
}

// MarshalJSON renders the entry with its error as a string.
func (e Entry) MarshalJSON() ([]byte, error) {
	view := struct {
		Package string         `json:"package"`
		Class   string         `json:"class"`
		Kind    templates.Kind `json:"kind"`
		Path    string         `json:"path"`
		Outcome Outcome        `json:"outcome"`
		Error   string         `json:"error,omitempty"`
	}{
		Package: e.Pair.Package,
		Class:   e.Pair.Class,
		Kind:    e.Kind,
		Path:    e.Path,
		Outcome: e.Outcome,
	}
	if e.Err != nil {
		view.Error = e.Err.Error()
	}
	return json.Marshal(view)
}
