package generators

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.eggybyte.com/scaffold/core/errors"
	"go.eggybyte.com/scaffold/core/log"
	"go.eggybyte.com/scaffold/internal/ident"
	"go.eggybyte.com/scaffold/internal/projectfs"
	"go.eggybyte.com/scaffold/internal/templates"
)

// Request selects what to scaffold and where.
//
// Empty roots default to the language's conventional layout
// (src/main/<language>, src/test/<language>); an empty language means Java.
// Duplicate packages or classes are allowed and produce skipped entries.
type Request struct {
	Packages   []string
	Classes    []string
	SourceRoot string
	TestRoot   string
	Language   ident.Language
}

// Layout returns the resolved layout for the request.
func (r Request) Layout() Layout {
	lang, err := ident.ParseLanguage(string(r.Language))
	if err != nil {
		lang = ident.Java
	}
	layout := Layout{SourceRoot: r.SourceRoot, TestRoot: r.TestRoot, Language: lang}
	if layout.SourceRoot == "" {
		layout.SourceRoot = lang.SourceRoot()
	}
	if layout.TestRoot == "" {
		layout.TestRoot = lang.TestRoot()
	}
	return layout
}

// Validate checks every package and class name. It is fail-fast: the
// first invalid identifier is returned with CodeInvalidArgument.
func (r Request) Validate() error {
	lang, err := ident.ParseLanguage(string(r.Language))
	if err != nil {
		return err
	}
	if len(r.Packages) == 0 {
		return errors.New(errors.CodeInvalidArgument, "at least one package name is required")
	}
	if len(r.Classes) == 0 {
		return errors.New(errors.CodeInvalidArgument, "at least one class name is required")
	}
	for _, pkg := range r.Packages {
		if err := ident.ValidatePackage(lang, pkg); err != nil {
			return err
		}
	}
	for _, class := range r.Classes {
		if err := ident.ValidateClass(lang, class); err != nil {
			return err
		}
	}
	return nil
}

// Combine returns the cross product of packages and classes,
// outer loop over packages, inner loop over classes.
func Combine(packages, classes []string) []Pair {
	pairs := make([]Pair, 0, len(packages)*len(classes))
	for _, pkg := range packages {
		for _, class := range classes {
			pairs = append(pairs, Pair{Package: pkg, Class: class})
		}
	}
	return pairs
}

// Plan validates the request and returns every target in generation
// order without touching the filesystem.
func Plan(req Request) ([]Target, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	layout := req.Layout()
	pairs := Combine(req.Packages, req.Classes)
	targets := make([]Target, 0, 2*len(pairs))
	for _, pair := range pairs {
		targets = append(targets,
			Target{Pair: pair, Kind: templates.KindMain, Path: layout.MainPath(pair)},
			Target{Pair: pair, Kind: templates.KindTest, Path: layout.TestPath(pair)},
		)
	}
	return targets, nil
}

// Generator writes scaffold pairs through a ProjectFS.
type Generator struct {
	fs     *projectfs.ProjectFS
	loader *templates.Loader
	logger log.Logger
	out    io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the structured logger (default: discard).
func WithLogger(logger log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithOutput sets where "Created: <path>" lines go (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		if w != nil {
			g.out = w
		}
	}
}

// WithLoader sets the template loader.
func WithLoader(loader *templates.Loader) Option {
	return func(g *Generator) {
		if loader != nil {
			g.loader = loader
		}
	}
}

// NewGenerator creates a generator writing through pfs.
func NewGenerator(pfs *projectfs.ProjectFS, opts ...Option) *Generator {
	g := &Generator{
		fs:     pfs,
		loader: templates.NewLoader(),
		logger: log.Nop(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate scaffolds the main and test file of every pair in the request.
//
// Returns:
//   - *Report: one entry per target, in generation order; never nil unless
//     validation failed
//   - error: CodeInvalidArgument for bad input and CodeInternal for a
//     broken template set (nothing is written in either case), CodeAborted if ctx was cancelled between pairs (the partial report is
//     returned). Write failures are NOT returned here; see Report.Err.
func (g *Generator) Generate(ctx context.Context, req Request) (*Report, error) {
	targets, err := Plan(req)
	if err != nil {
		return nil, err
	}
	if err := g.loader.ValidateAllTemplates(); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "templates.validate", err)
	}

	layout := req.Layout()
	report := &Report{
		Root:       g.fs.GetRootDir(),
		Language:   layout.Language,
		SourceRoot: layout.SourceRoot,
		TestRoot:   layout.TestRoot,
		Entries:    make([]Entry, 0, len(targets)),
	}

	logger := g.logger.With(log.Str("language", string(layout.Language)))
	logger.Debug("scaffold generation started", log.Int("targets", len(targets)))

	for i, target := range targets {
		if target.Kind == templates.KindMain {
			if err := ctx.Err(); err != nil {
				logger.Warn("scaffold generation interrupted", log.Int("pairs_done", i/2))
				return report, errors.Wrapf(errors.CodeAborted, "generators.generate", err,
					"interrupted after %d of %d pairs", i/2, len(targets)/2)
			}
		}
		report.Entries = append(report.Entries, g.scaffold(logger, layout.Language, target))
	}

	logger.Info("scaffold generation finished",
		log.Int("created", report.Count(Created)),
		log.Int("skipped", report.Count(Skipped)),
		log.Int("failed", report.Count(Failed)),
	)
	return report, nil
}

func (g *Generator) scaffold(logger log.Logger, lang ident.Language, target Target) Entry {
	entry := Entry{Target: target}
	logger = logger.With(log.Str("path", target.Path), log.Str("kind", string(target.Kind)))

	content, err := g.loader.Render(lang, target.Kind, target.Pair.Package, target.Pair.Class)
	if err != nil {
		entry.Outcome = Failed
		entry.Err = errors.Wrap(errors.CodeInternal, "templates.render", err)
		logger.Error(entry.Err, "scaffold render failed")
		return entry
	}

	created, err := g.fs.WriteFileIfNotExists(target.Path, content, projectfs.FileMode)
	switch {
	case err != nil:
		entry.Outcome = Failed
		entry.Err = err
		logger.Error(err, "scaffold write failed")
	case !created:
		entry.Outcome = Skipped
		logger.Debug("scaffold exists, skipped")
	default:
		entry.Outcome = Created
		fmt.Fprintf(g.out, "%s%s\n", createdPrefix(target.Kind), target.Path)
	}
	return entry
}

func createdPrefix(kind templates.Kind) string {
	if kind == templates.KindTest {
		return "Created test file: "
	}
	return "Created: "
}
