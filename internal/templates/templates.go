// Package templates provides the embedded scaffold templates and their rendering.
//
// Overview:
//   - Responsibility: Load and render main/test source templates per language
//   - Key Types: Loader, Kind, Data
//   - Concurrency Model: Parsed templates are cached and safe for concurrent use
//   - Error Semantics: Missing templates and render failures are returned as errors
//   - Performance Notes: Each template is parsed once per Loader
//
// Rendering is pure string substitution with no I/O: the same
// (language, kind, package, class) always yields the same content.
//
// Usage:
//
//	loader := templates.NewLoader()
//	if err := loader.ValidateAllTemplates(); err != nil {
//	    return err
//	}
//	content, err := loader.Render(ident.Java, templates.KindMain, "anderson.app", "Gui")
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"text/template"

	"go.eggybyte.com/scaffold/internal/ident"
)

//go:embed templates
var templateFS embed.FS

// Kind identifies which file of a pair a template produces.
type Kind string

const (
	// KindMain renders the main source file.
	KindMain Kind = "main"
	// KindTest renders the mirrored test file.
	KindTest Kind = "test"
)

// TestSuffix is appended to the class name to form the test class name.
const TestSuffix = "Test"

// Data holds the values substituted into a template.
type Data struct {
	Package   string // Package declaration, e.g. "anderson.app"
	Class     string // Declared type name, e.g. "Gui"
	TestClass string // Test type name, e.g. "GuiTest"
	Expected  string // Literal greeting, e.g. "Hello, Gui!"
}

// NewData builds template data for a package and class.
func NewData(pkg, class string) Data {
	return Data{
		Package:   pkg,
		Class:     class,
		TestClass: class + TestSuffix,
		Expected:  Greeting(class),
	}
}

// Greeting returns the literal text the generated main type prints.
func Greeting(class string) string {
	return fmt.Sprintf("Hello, %s!", class)
}

// Loader provides template loading and rendering.
type Loader struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewLoader creates a loader over the embedded template set.
func NewLoader() *Loader {
	// fs.Sub only fails on an invalid directory name.
	sub, _ := fs.Sub(templateFS, "templates")
	return NewLoaderFS(sub)
}

// NewLoaderFS creates a loader over a template set laid out as
// <language>/<kind>.tmpl.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*template.Template),
	}
}

// TemplatePath returns the embedded path of the template for lang and kind.
func TemplatePath(lang ident.Language, kind Kind) string {
	return path.Join(string(lang), string(kind)+".tmpl")
}

// LoadTemplate loads raw template content.
func (l *Loader) LoadTemplate(templatePath string) (string, error) {
	content, err := fs.ReadFile(l.fsys, templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", templatePath, err)
	}
	return string(content), nil
}

// Render renders the template for lang and kind with the given package and class.
func (l *Loader) Render(lang ident.Language, kind Kind, pkg, class string) (string, error) {
	tmpl, err := l.parsed(TemplatePath(lang, kind))
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, NewData(pkg, class)); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", tmpl.Name(), err)
	}
	return result.String(), nil
}

func (l *Loader) parsed(templatePath string) (*template.Template, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if tmpl, ok := l.cache[templatePath]; ok {
		return tmpl, nil
	}

	content, err := l.LoadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(templatePath).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templatePath, err)
	}

	l.cache[templatePath] = tmpl
	return tmpl, nil
}

// ListTemplates lists every template path in the set.
func (l *Loader) ListTemplates() ([]string, error) {
	var paths []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".tmpl") {
			paths = append(paths, p)
		}
		return nil
	})
	return paths, err
}

// ValidateAllTemplates parses every template in the set and checks that
// each supported language has one for each kind.
func (l *Loader) ValidateAllTemplates() error {
	paths, err := l.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	for _, p := range paths {
		if _, err := l.parsed(p); err != nil {
			return err
		}
	}

	for _, lang := range ident.Languages {
		for _, kind := range []Kind{KindMain, KindTest} {
			if !slices.Contains(paths, TemplatePath(lang, kind)) {
				return fmt.Errorf("missing template for %s/%s", lang, kind)
			}
		}
	}
	return nil
}
