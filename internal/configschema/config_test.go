package configschema

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.eggybyte.com/scaffold/configx"
	coreerrors "go.eggybyte.com/scaffold/core/errors"
	"go.eggybyte.com/scaffold/internal/generators"
	"go.eggybyte.com/scaffold/internal/ident"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

// resolveFile resolves path alone, without environment or XDG lookups.
func resolveFile(path string) (*Config, *Diagnostics) {
	return Resolve(context.Background(), Options{ConfigPath: path, SkipXDG: true, Env: []configx.Source{}})
}

func TestResolve_File(t *testing.T) {
	testConfig := `language: java
packages: [anderson.app, anderson.util]
classes: [Gui]
series:
  - prefix: Exercise
    count: 3
`
	path := writeConfig(t, t.TempDir(), testConfig)

	config, diags := resolveFile(path)
	if config == nil {
		t.Fatal("Expected config to be loaded")
	}
	if diags.HasErrors() {
		t.Fatalf("Expected no errors, got: %v", diags.Items())
	}
	if items := diags.Items(); items[0].Severity != SeverityInfo || items[0].Path != path {
		t.Errorf("Expected info diagnostic naming %q, got %v", path, items)
	}

	if config.File != path {
		t.Errorf("Expected File %q, got %q", path, config.File)
	}
	if config.SourceRoot != "src/main/java" || config.TestRoot != "src/test/java" {
		t.Errorf("Expected default roots, got %q and %q", config.SourceRoot, config.TestRoot)
	}

	want := []string{"Gui", "Exercise01", "Exercise02", "Exercise03"}
	got := config.AllClasses()
	if len(got) != len(want) {
		t.Fatalf("Expected classes %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Class %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestResolve_FileNotFound(t *testing.T) {
	config, diags := resolveFile("/nonexistent/scaffold.yaml")
	if config != nil {
		t.Error("Expected config to be nil for nonexistent file")
	}
	if !diags.HasErrors() {
		t.Error("Expected errors for nonexistent file")
	}
}

func TestResolve_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "packages: [unterminated\n")

	config, diags := resolveFile(path)
	if config != nil {
		t.Error("Expected config to be nil for invalid YAML")
	}
	if !diags.HasErrors() || diags.Items()[0].Suggestion != "Check YAML syntax" {
		t.Errorf("Expected YAML syntax diagnostic, got %v", diags.Items())
	}
}

func TestApplyDefaults(t *testing.T) {
	config := &Config{Language: "kotlin"}

	applyDefaults(config)

	if config.SourceRoot != "src/main/kotlin" {
		t.Errorf("Expected kotlin source root, got %q", config.SourceRoot)
	}
	if len(config.Packages) != 1 || config.Packages[0] != "anderson.app" {
		t.Errorf("Expected default packages, got %v", config.Packages)
	}
	if len(config.Classes) != 2 || config.Classes[0] != "Gui" || config.Classes[1] != "Cli" {
		t.Errorf("Expected default classes, got %v", config.Classes)
	}

	withSeries := &Config{Series: []generators.Series{{Prefix: "Lab", Count: 2}}}
	applyDefaults(withSeries)
	if len(withSeries.Classes) != 0 {
		t.Errorf("Expected series to suppress default classes, got %v", withSeries.Classes)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
		path        string
	}{
		{
			name:   "valid config",
			config: &Config{Packages: []string{"a.b"}, Classes: []string{"Foo"}},
		},
		{
			name:        "reserved package segment",
			config:      &Config{Packages: []string{"a.class"}, Classes: []string{"Foo"}},
			expectError: true,
			path:        "packages[0]",
		},
		{
			name:        "invalid class name",
			config:      &Config{Packages: []string{"a"}, Classes: []string{"Foo", "Bad-Name"}},
			expectError: true,
			path:        "classes[1]",
		},
		{
			name:        "unsupported language",
			config:      &Config{Language: "scala", Packages: []string{"a"}, Classes: []string{"Foo"}},
			expectError: true,
			path:        "language",
		},
		{
			name:        "zero series count",
			config:      &Config{Packages: []string{"a"}, Series: []generators.Series{{Prefix: "Ex"}}},
			expectError: true,
			path:        "series[0].count",
		},
		{
			name:        "series count over limit",
			config:      &Config{Packages: []string{"a"}, Series: []generators.Series{{Prefix: "Ex", Count: 2000000000}}},
			expectError: true,
			path:        "series[0].count",
		},
		{
			name:        "java restricted class name",
			config:      &Config{Packages: []string{"app.record"}, Classes: []string{"record"}},
			expectError: true,
			path:        "classes[0]",
		},
		{
			name:        "series prefix not an identifier",
			config:      &Config{Packages: []string{"a"}, Series: []generators.Series{{Prefix: "1Ex", Count: 2}}},
			expectError: true,
			path:        "series[0].prefix",
		},
		{
			name:   "kotlin allows java keyword",
			config: &Config{Language: "kotlin", Packages: []string{"app.native"}, Classes: []string{"Foo"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyDefaults(tt.config)
			diags := NewDiagnostics()
			validateConfig(tt.config, diags)

			hasErrors := diags.HasErrors()
			if hasErrors != tt.expectError {
				t.Fatalf("Expected error: %v, got: %v (%v)", tt.expectError, hasErrors, diags.Items())
			}
			if tt.path != "" && diags.Items()[0].Path != tt.path {
				t.Errorf("Expected path %q, got %q", tt.path, diags.Items()[0].Path)
			}
		})
	}
}

func TestValidateConfig_SameRootsWarns(t *testing.T) {
	config := &Config{Packages: []string{"a"}, Classes: []string{"Foo"}, SourceRoot: "src", TestRoot: "src"}
	applyDefaults(config)
	diags := NewDiagnostics()
	validateConfig(config, diags)

	if diags.HasErrors() {
		t.Fatalf("Expected no errors, got %v", diags.Items())
	}
	if !diags.HasWarnings() {
		t.Error("Expected a warning for identical roots")
	}
}

func TestValidateConfig_DuplicatesWarn(t *testing.T) {
	config := &Config{
		Packages: []string{"a", "a"},
		Classes:  []string{"Exercise01"},
		Series:   []generators.Series{{Prefix: "Exercise", Count: 2}},
	}
	applyDefaults(config)
	diags := NewDiagnostics()
	validateConfig(config, diags)

	if diags.HasErrors() {
		t.Fatalf("Duplicates must not be errors, got %v", diags.Items())
	}
	warnings := 0
	for _, d := range diags.Items() {
		if d.Severity == SeverityWarning {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("Expected 2 warnings (package and class), got %v", diags.Items())
	}
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `language: java
packages: [from.file]
classes: [FileClass]
source_root: file/src
`)

	config, diags := Resolve(context.Background(), Options{
		WorkDir: dir,
		SkipXDG: true,
		Env: []configx.Source{configx.MapSource{
			"PACKAGES":  "from.env, other.env",
			"TEST_ROOT": "env/test",
			"UNRELATED": "ignored",
		}},
		Flags: Overrides{Classes: []string{"FlagClass"}},
	})
	if diags.HasErrors() {
		t.Fatalf("Expected no errors, got %v", diags.Items())
	}

	req := config.Request()
	if len(req.Packages) != 2 || req.Packages[0] != "from.env" || req.Packages[1] != "other.env" {
		t.Errorf("Expected env packages, got %v", req.Packages)
	}
	if len(req.Classes) != 1 || req.Classes[0] != "FlagClass" {
		t.Errorf("Expected flag classes, got %v", req.Classes)
	}
	if req.SourceRoot != "file/src" {
		t.Errorf("Expected file source root, got %q", req.SourceRoot)
	}
	if req.TestRoot != "env/test" {
		t.Errorf("Expected env test root, got %q", req.TestRoot)
	}
	if req.Language != ident.Java {
		t.Errorf("Expected java, got %q", req.Language)
	}
}

func TestResolve_DefaultsWithoutFile(t *testing.T) {
	config, diags := Resolve(context.Background(), Options{
		WorkDir: t.TempDir(),
		SkipXDG: true,
		Env:     []configx.Source{},
	})
	if diags.HasErrors() {
		t.Fatalf("Expected no errors, got %v", diags.Items())
	}
	if config.File != "" {
		t.Errorf("Expected no file, got %q", config.File)
	}

	req := config.Request()
	if len(req.Packages) != 1 || req.Packages[0] != "anderson.app" {
		t.Errorf("Expected default package, got %v", req.Packages)
	}
	if len(req.Classes) != 2 {
		t.Errorf("Expected default classes, got %v", req.Classes)
	}
}

func TestResolve_DotenvAndProcessEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DotenvFileName), []byte("scaffold_language=kotlin\nSCAFFOLD_CLASSES=Main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCAFFOLD_CLASSES", "Shell")

	config, diags := Resolve(context.Background(), Options{WorkDir: dir, SkipXDG: true})
	if diags.HasErrors() {
		t.Fatalf("Expected no errors, got %v", diags.Items())
	}
	if config.ParsedLanguage() != ident.Kotlin {
		t.Errorf("Expected kotlin from .env, got %q", config.Language)
	}
	if len(config.Classes) != 1 || config.Classes[0] != "Shell" {
		t.Errorf("Expected process env to override .env, got %v", config.Classes)
	}
	if config.SourceRoot != "src/main/kotlin" {
		t.Errorf("Expected kotlin root, got %q", config.SourceRoot)
	}
}

func TestResolve_SeriesOverLimit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `packages: [app]
series:
  - prefix: Exercise
    count: 2000000000
`)

	_, diags := resolveFile(path)
	if !coreerrors.IsCode(diags.Err(), coreerrors.CodeInvalidArgument) {
		t.Fatalf("Expected INVALID_ARGUMENT, got %v", diags.Err())
	}
	found := false
	for _, d := range diags.Items() {
		if d.Severity == SeverityError && d.Path == "series[0].count" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected series[0].count error, got %v", diags.Items())
	}
}

func TestResolve_MissingExplicitConfig(t *testing.T) {
	config, diags := Resolve(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		SkipXDG:    true,
		Env:        []configx.Source{},
	})
	if config != nil {
		t.Error("Expected nil config")
	}
	if !coreerrors.IsCode(diags.Err(), coreerrors.CodeInvalidArgument) {
		t.Errorf("Expected INVALID_ARGUMENT, got %v", diags.Err())
	}
}

func TestResolve_InvalidIdentifierFromFlags(t *testing.T) {
	config, diags := Resolve(context.Background(), Options{
		WorkDir: t.TempDir(),
		SkipXDG: true,
		Env:     []configx.Source{},
		Flags:   Overrides{Packages: []string{"bad-pkg"}},
	})
	if config == nil {
		t.Fatal("Expected config even when invalid")
	}
	if !diags.HasErrors() {
		t.Fatal("Expected validation error")
	}
	if diags.Err() == nil {
		t.Error("Expected Err() to be non-nil")
	}
}

func TestStarterRoundTrip(t *testing.T) {
	data, err := Marshal(Starter())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	dir := t.TempDir()
	path := writeConfig(t, dir, string(data))

	config, diags := resolveFile(path)
	if diags.HasErrors() {
		t.Fatalf("Starter config must be valid, got %v", diags.Items())
	}
	if n := len(config.AllClasses()); n != 7 {
		t.Errorf("Expected 7 classes (Gui, Cli, Exercise01..05), got %d", n)
	}
}
