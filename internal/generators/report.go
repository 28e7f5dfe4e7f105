package generators

import (
	"fmt"
	"path/filepath"

	"github.com/xlab/treeprint"

	"go.eggybyte.com/scaffold/core/errors"
	"go.eggybyte.com/scaffold/internal/ident"
	"go.eggybyte.com/scaffold/internal/templates"
)

// Report is the ordered result of one Generate call.
type Report struct {
	Root       string         `json:"root"`
	Language   ident.Language `json:"language"`
	SourceRoot string         `json:"source_root"`
	TestRoot   string         `json:"test_root"`
	Entries    []Entry        `json:"entries"`
}

// Count returns the number of entries with the given outcome.
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}

// CountKind returns the number of entries of kind with the given outcome.
func (r *Report) CountKind(kind templates.Kind, outcome Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Kind == kind && e.Outcome == outcome {
			n++
		}
	}
	return n
}

// HasFailures reports whether any entry failed.
func (r *Report) HasFailures() bool {
	return r.Count(Failed) > 0
}

// Failures returns the failed entries in order.
func (r *Report) Failures() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if e.Outcome == Failed {
			failed = append(failed, e)
		}
	}
	return failed
}

// Err joins the errors of all failed entries, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, e := range r.Failures() {
		errs = append(errs, fmt.Errorf("%s: %w", e.Path, e.Err))
	}
	return errors.Join(errs...)
}

// Summary returns a one-line human summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d created, %d skipped, %d failed",
		r.Count(Created), r.Count(Skipped), r.Count(Failed))
}

// Tree renders the entries under the project root, grouped by source
// root and package:
//
//	.
//	├── src/main/java
//	│   └── anderson.app
//	│       ├── [created]  Gui.java
//	│       └── [skipped]  Cli.java
//	└── src/test/java
//	    └── ...
func (r *Report) Tree() string {
	tree := treeprint.New()
	if r.Root != "" {
		tree = treeprint.NewWithRoot(r.Root)
	}

	roots := map[templates.Kind]treeprint.Tree{}
	packages := map[string]treeprint.Tree{}

	for _, e := range r.Entries {
		root, ok := roots[e.Kind]
		if !ok {
			name := r.SourceRoot
			if e.Kind == templates.KindTest {
				name = r.TestRoot
			}
			root = tree.AddBranch(name)
			roots[e.Kind] = root
		}

		key := string(e.Kind) + "|" + e.Pair.Package
		pkg, ok := packages[key]
		if !ok {
			pkg = root.AddBranch(e.Pair.Package)
			packages[key] = pkg
		}

		pkg.AddMetaNode(e.Outcome, filepath.Base(e.Path))
	}

	return tree.String()
}
