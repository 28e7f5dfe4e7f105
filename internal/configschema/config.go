// Package configschema provides configuration loading and validation for scaffold.
//
// Overview:
//   - Responsibility: Locate and parse scaffold.yaml, apply env and flag overrides, fill defaults, validate
//   - Key Types: Config, Overrides, Options, Diagnostics
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Structured validation diagnostics with suggestions
//   - Performance Notes: Single-pass parsing, one env scan
//
// Usage:
//
//	config, diags := configschema.Resolve(ctx, configschema.Options{WorkDir: "."})
//	if diags.HasErrors() {
//	    return diags.Err()
//	}
//	report, err := gen.Generate(ctx, config.Request())
package configschema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"go.eggybyte.com/scaffold/configx"
	coreerrors "go.eggybyte.com/scaffold/core/errors"
	"go.eggybyte.com/scaffold/core/utils"
	"go.eggybyte.com/scaffold/internal/generators"
	"go.eggybyte.com/scaffold/internal/ident"
)

const (
	// DefaultFileName is the project configuration file name.
	DefaultFileName = "scaffold.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SCAFFOLD_"
	// DotenvFileName is loaded from the working directory when present.
	DotenvFileName = ".env"
)

// XDGConfigPath is the config file searched under the XDG config directories.
var XDGConfigPath = filepath.Join("scaffold", DefaultFileName)

// Built-in defaults, matching the original build task.
var (
	DefaultPackages = []string{"anderson.app"}
	DefaultClasses  = []string{"Gui", "Cli"}
)

// Config represents the complete scaffold configuration.
//
// Fields carry three tag sets: yaml for scaffold.yaml, env for SCAFFOLD_*
// overrides (lists are comma-separated) and validate for the rules applied
// after defaults.
type Config struct {
	Language   string              `yaml:"language" env:"LANGUAGE" validate:"language"`
	SourceRoot string              `yaml:"source_root,omitempty" env:"SOURCE_ROOT"`
	TestRoot   string              `yaml:"test_root,omitempty" env:"TEST_ROOT"`
	Packages   []string            `yaml:"packages" env:"PACKAGES" validate:"required,dive,pkgname"`
	Classes    []string            `yaml:"classes" env:"CLASSES" validate:"dive,classname"`
	Series     []generators.Series `yaml:"series,omitempty" validate:"dive"`

	// File is the configuration file that was loaded, if any.
	File string `yaml:"-"`
}

// Overrides holds command-line values; empty fields do not override.
type Overrides struct {
	Language   string
	SourceRoot string
	TestRoot   string
	Packages   []string
	Classes    []string
	Series     []generators.Series
}

// Options controls where configuration is read from.
type Options struct {
	// ConfigPath is an explicit configuration file; it must exist.
	ConfigPath string
	// WorkDir is searched for scaffold.yaml and .env (default ".").
	WorkDir string
	// SkipXDG disables the XDG config directory search.
	SkipXDG bool
	// Env replaces the dotenv and process environment sources. Its keys
	// are bound without the SCAFFOLD_ prefix, e.g. PACKAGES.
	Env []configx.Source
	// Flags are applied last.
	Flags Overrides
}

// ParsedLanguage returns the configured language, Java when unset or invalid.
func (c *Config) ParsedLanguage() ident.Language {
	lang, err := ident.ParseLanguage(c.Language)
	if err != nil {
		return ident.Java
	}
	return lang
}

// AllClasses returns explicit classes followed by every series expansion.
func (c *Config) AllClasses() []string {
	return generators.ExpandClasses(c.Classes, c.Series)
}

// Request builds the generator request described by the configuration.
func (c *Config) Request() generators.Request {
	return generators.Request{
		Packages:   append([]string{}, c.Packages...),
		Classes:    c.AllClasses(),
		SourceRoot: c.SourceRoot,
		TestRoot:   c.TestRoot,
		Language:   c.ParsedLanguage(),
	}
}

// Starter returns the configuration written by `scaffold init`.
func Starter() *Config {
	return &Config{
		Language: string(ident.Java),
		Packages: append([]string{}, DefaultPackages...),
		Classes:  append([]string{}, DefaultClasses...),
		Series:   []generators.Series{{Prefix: "Exercise", Count: 5}},
	}
}

// Marshal renders the configuration as YAML.
func Marshal(config *Config) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, coreerrors.Wrap(coreerrors.CodeInternal, "configschema.marshal", err)
	}
	return data, nil
}

// Resolve builds the effective configuration from every layer, lowest
// precedence first: defaults, configuration file, environment, flags.
func Resolve(ctx context.Context, opts Options) (*Config, *Diagnostics) {
	diags := NewDiagnostics()
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}

	config := &Config{}

	if path, ok := FindConfigFile(opts); ok {
		if !readFile(path, config, diags) {
			return nil, diags
		}
		diags.AddInfo("Using configuration file", path, "")
	} else if opts.ConfigPath != "" {
		diags.AddError("Configuration file not found", opts.ConfigPath, "Run 'scaffold init' to create "+DefaultFileName)
		return nil, diags
	}

	sources := opts.Env
	if sources == nil {
		envOpts := configx.EnvOptions{Prefix: EnvPrefix, Uppercase: true}
		sources = []configx.Source{
			configx.NewDotenvSource(envOpts, filepath.Join(opts.WorkDir, DotenvFileName)),
			configx.NewEnvSource(envOpts),
		}
	}
	if err := applyEnv(ctx, config, sources); err != nil {
		diags.AddError(fmt.Sprintf("Failed to read environment: %v", err), EnvPrefix+"*", "Check the .env file syntax")
		return nil, diags
	}

	applyOverrides(config, opts.Flags)
	applyDefaults(config)
	validateConfig(config, diags)

	return config, diags
}

// FindConfigFile returns the configuration file to load: the explicit
// path, else scaffold.yaml in the work directory, else the first match in
// the XDG config directories.
func FindConfigFile(opts Options) (string, bool) {
	if opts.ConfigPath != "" {
		return opts.ConfigPath, fileExists(opts.ConfigPath)
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	local := filepath.Join(workDir, DefaultFileName)
	if fileExists(local) {
		return local, true
	}

	if opts.SkipXDG {
		return "", false
	}
	path, err := xdg.SearchConfigFile(XDGConfigPath)
	if err != nil {
		return "", false
	}
	return path, true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func readFile(path string, config *Config, diags *Diagnostics) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			diags.AddError("Configuration file not found", path, "Run 'scaffold init' to create "+DefaultFileName)
		} else {
			diags.AddError(fmt.Sprintf("Failed to read configuration file: %v", err), path, "Check file permissions")
		}
		return false
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		diags.AddError(fmt.Sprintf("Failed to parse YAML: %v", err), path, "Check YAML syntax")
		return false
	}

	config.File = path
	return true
}

// applyEnv overlays environment values onto config.
func applyEnv(ctx context.Context, config *Config, sources []configx.Source) error {
	snapshot, err := configx.Merge(ctx, sources...)
	if err != nil {
		return err
	}
	return configx.Bind(snapshot, config)
}

func applyOverrides(config *Config, flags Overrides) {
	if flags.Language != "" {
		config.Language = flags.Language
	}
	if flags.SourceRoot != "" {
		config.SourceRoot = flags.SourceRoot
	}
	if flags.TestRoot != "" {
		config.TestRoot = flags.TestRoot
	}
	if len(flags.Packages) > 0 {
		config.Packages = flags.Packages
	}
	// Explicit classes or series on the command line replace both lists.
	if len(flags.Classes) > 0 || len(flags.Series) > 0 {
		config.Classes = flags.Classes
		config.Series = flags.Series
	}
}

// applyDefaults fills in default values for missing configuration.
func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = string(ident.Java)
	}

	lang := config.ParsedLanguage()
	if config.SourceRoot == "" {
		config.SourceRoot = lang.SourceRoot()
	}
	if config.TestRoot == "" {
		config.TestRoot = lang.TestRoot()
	}

	if len(config.Packages) == 0 {
		config.Packages = append([]string{}, DefaultPackages...)
	}
	if len(config.Classes) == 0 && len(config.Series) == 0 {
		config.Classes = append([]string{}, DefaultClasses...)
	}
}

// newValidator returns a validator whose identifier rules follow lang.
func newValidator(lang ident.Language) *validator.Validate {
	return configx.NewValidator(
		configx.WithTagNameFrom("yaml"),
		configx.WithRule("language", func(s string) bool {
			_, err := ident.ParseLanguage(s)
			return err == nil
		}),
		configx.WithRule("pkgname", func(s string) bool {
			return ident.ValidatePackage(lang, s) == nil
		}),
		configx.WithRule("classname", func(s string) bool {
			return ident.ValidateClass(lang, s) == nil
		}),
	)
}

// validateConfig performs comprehensive validation of the configuration.
func validateConfig(config *Config, diags *Diagnostics) {
	lang := config.ParsedLanguage()

	err := configx.ValidateStruct(newValidator(lang), config)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			diags.AddError(fieldMessage(fe, lang), fieldPath(fe), fieldSuggestion(fe))
		}
	} else if err != nil {
		diags.AddError(fmt.Sprintf("Validation failed: %v", err), "", "")
	}

	if config.SourceRoot == config.TestRoot {
		diags.AddWarning("Source and test roots are the same directory", "test_root",
			"Use separate roots, e.g. "+lang.SourceRoot()+" and "+lang.TestRoot())
	}

	// Expanded series names must also be valid class names. Series over
	// MaxSeriesCount expand to nothing and are reported by the count rule.
	for i, s := range config.Series {
		for _, name := range s.Names() {
			if err := ident.ValidateClass(lang, name); err != nil {
				diags.AddError(err.Error(), fmt.Sprintf("series[%d].prefix", i), "Use a prefix that starts with a letter")
				break
			}
		}
	}

	for _, pkg := range utils.Duplicates(config.Packages) {
		diags.AddWarning(fmt.Sprintf("Package %q is listed more than once", pkg), "packages", "Duplicates only produce skipped files")
	}
	for _, class := range utils.Duplicates(config.AllClasses()) {
		diags.AddWarning(fmt.Sprintf("Class %q is listed more than once", class), "classes", "Duplicates only produce skipped files")
	}

	if len(config.AllClasses()) == 0 {
		diags.AddError("At least one class is required", "classes", "Add classes or a series entry")
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError, lang ident.Language) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "language":
		return fmt.Sprintf("Unsupported language %q", fe.Value())
	case "pkgname":
		return fmt.Sprintf("Invalid %s package name %q", lang, fe.Value())
	case "classname":
		return fmt.Sprintf("Invalid %s class name %q", lang, fe.Value())
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s must satisfy %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag())
	}
}

func fieldSuggestion(fe validator.FieldError) string {
	switch fe.Tag() {
	case "language":
		return "Use java or kotlin"
	case "pkgname":
		return "Use dot-separated identifiers that are not reserved words, e.g. anderson.app"
	case "classname":
		return "Use an identifier that starts with a letter, e.g. Gui"
	case "lte":
		if fe.Field() == "count" {
			return fmt.Sprintf("Split the series; each may expand to at most %d names", generators.MaxSeriesCount)
		}
		return ""
	default:
		return ""
	}
}
