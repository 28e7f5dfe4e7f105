package main

import (
	"context"

	"github.com/spf13/cobra"

	"go.eggybyte.com/scaffold/internal/configschema"
	"go.eggybyte.com/scaffold/internal/generators"
	"go.eggybyte.com/scaffold/internal/ui"
)

// selection holds the flags shared by generate and plan.
type selection struct {
	configPath   string
	root         string
	language     string
	sourceRoot   string
	testRoot     string
	packages     []string
	classes      []string
	series       []string
	noUserConfig bool
}

func (s *selection) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&s.configPath, "config", "", "Configuration file (default: ./scaffold.yaml, then the user config dir)")
	flags.StringVar(&s.root, "root", ".", "Project root directory")
	flags.StringVar(&s.language, "language", "", "Target language: java or kotlin (default: java)")
	flags.StringVar(&s.sourceRoot, "source-root", "", "Source root relative to --root (default: src/main/<language>)")
	flags.StringVar(&s.testRoot, "test-root", "", "Test root relative to --root (default: src/test/<language>)")
	flags.StringSliceVarP(&s.packages, "package", "p", nil, "Package name, repeatable or comma-separated")
	flags.StringSliceVarP(&s.classes, "class", "c", nil, "Class name, repeatable or comma-separated")
	flags.StringArrayVar(&s.series, "series", nil, "Numbered classes as Prefix:count or Prefix:first-last, repeatable")
	flags.BoolVar(&s.noUserConfig, "no-user-config", false, "Ignore scaffold/scaffold.yaml in the user config directory")
}

// resolve builds the effective configuration and reports diagnostics.
func (s *selection) resolve(ctx context.Context) (*configschema.Config, error) {
	overrides := configschema.Overrides{
		Language:   s.language,
		SourceRoot: s.sourceRoot,
		TestRoot:   s.testRoot,
		Packages:   s.packages,
		Classes:    s.classes,
	}
	for _, spec := range s.series {
		series, err := generators.ParseSeries(spec)
		if err != nil {
			return nil, err
		}
		overrides.Series = append(overrides.Series, series)
	}

	config, diags := configschema.Resolve(ctx, configschema.Options{
		ConfigPath: s.configPath,
		WorkDir:    s.root,
		SkipXDG:    s.noUserConfig,
		Flags:      overrides,
	})

	for _, d := range diags.Items() {
		switch d.Severity {
		case configschema.SeverityError:
			ui.Error("%s", d)
		case configschema.SeverityWarning:
			ui.Warning("%s", d)
		default:
			ui.Debug("%s", d)
		}
	}
	if err := diags.Err(); err != nil {
		return nil, err
	}
	return config, nil
}
