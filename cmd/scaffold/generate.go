package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.eggybyte.com/scaffold/internal/generators"
	"go.eggybyte.com/scaffold/internal/metrics"
	"go.eggybyte.com/scaffold/internal/projectfs"
	"go.eggybyte.com/scaffold/internal/ui"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"setclass"},
	Short:   "Create missing source and test files for every package/class pair",
	Long: `Create a source file and a unit test file for every combination of
package and class name. Files that already exist are left untouched.

Each created file is reported on its own line:
  Created: src/main/java/anderson/app/Gui.java
  Created test file: src/test/java/anderson/app/GuiTest.java

With no selection flags and no scaffold.yaml, the package anderson.app and
the classes Gui and Cli are generated.

Example:
  scaffold generate
  scaffold generate -p anderson.app -c Gui -c Cli
  scaffold generate -p lab.week1 --series Exercise:5
  scaffold generate --language kotlin -p demo -c App --tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), &generateSelection, generateOpts)
	},
}

// generateOptions holds the generate-only flags.
type generateOptions struct {
	tree        bool
	metricsFile string
}

var (
	generateSelection selection
	generateOpts      generateOptions
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateSelection.register(generateCmd)
	generateCmd.Flags().BoolVar(&generateOpts.tree, "tree", false, "Print a tree of all files and their outcome")
	generateCmd.Flags().StringVar(&generateOpts.metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
}

// runGenerate resolves the configuration and scaffolds every pair.
//
// Returns:
//   - error: configuration errors, an ABORTED error on interruption, or the
//     joined per-file failures; nil when every file was created or skipped
func runGenerate(ctx context.Context, sel *selection, opts generateOptions) error {
	config, err := sel.resolve(ctx)
	if err != nil {
		return err
	}

	pfs := projectfs.NewProjectFS(sel.root)
	pfs.SetVerbose(verbose)

	var out io.Writer = ui.Stdout()
	if ui.JSONOutput() {
		out = io.Discard
	}

	gen := generators.NewGenerator(pfs,
		generators.WithLogger(logger),
		generators.WithOutput(out),
	)

	report, genErr := gen.Generate(ctx, config.Request())
	if report == nil {
		return genErr
	}

	if opts.tree && !ui.JSONOutput() {
		fmt.Fprint(ui.Stdout(), report.Tree())
	}

	if opts.metricsFile != "" {
		if err := metrics.WriteTextfile(opts.metricsFile, report); err != nil {
			logger.Error(err, "metrics textfile not written", "path", opts.metricsFile)
			ui.Warning("Failed to write metrics file %s: %v", opts.metricsFile, err)
		} else {
			ui.Debug("Metrics written to %s", opts.metricsFile)
		}
	}

	switch {
	case genErr != nil:
		ui.Result(ui.LevelWarning, report, "Interrupted: %s", report.Summary())
		return genErr
	case report.HasFailures():
		for _, e := range report.Failures() {
			ui.Error("Failed: %s: %v", e.Path, e.Err)
		}
		ui.Result(ui.LevelError, report, "%s", report.Summary())
		return fmt.Errorf("%d of %d files failed", report.Count(generators.Failed), len(report.Entries))
	default:
		ui.Result(ui.LevelSuccess, report, "%s", report.Summary())
		return nil
	}
}
