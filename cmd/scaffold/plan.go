package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/scaffold/core/errors"
	"go.eggybyte.com/scaffold/internal/generators"
	"go.eggybyte.com/scaffold/internal/projectfs"
	"go.eggybyte.com/scaffold/internal/templates"
	"go.eggybyte.com/scaffold/internal/ui"
)

// planCmd represents the plan command.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the files generate would create, without writing anything",
	Long: `Resolve the configuration and print every derived path, marking each
as "create" or "exists". Nothing is written.

Example:
  scaffold plan -p anderson.app -c Gui
  scaffold plan --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd.Context(), &planSelection)
	},
}

var planSelection selection

func init() {
	rootCmd.AddCommand(planCmd)
	planSelection.register(planCmd)
}

// plannedFile is one line of plan output.
type plannedFile struct {
	generators.Target
	Exists bool `json:"exists"`
}

// runPlan prints the targets of the resolved configuration.
func runPlan(ctx context.Context, sel *selection) error {
	config, err := sel.resolve(ctx)
	if err != nil {
		return err
	}

	targets, err := generators.Plan(config.Request())
	if err != nil {
		return err
	}
	if err := templates.NewLoader().ValidateAllTemplates(); err != nil {
		return errors.Wrap(errors.CodeInternal, "templates.validate", err)
	}

	pfs := projectfs.NewProjectFS(sel.root)
	planned := make([]plannedFile, 0, len(targets))
	pending := 0
	for _, target := range targets {
		exists, err := pfs.FileExists(target.Path)
		if err != nil {
			return err
		}
		planned = append(planned, plannedFile{Target: target, Exists: exists})
		if !exists {
			pending++
		}
	}

	if ui.JSONOutput() {
		ui.Result(ui.LevelInfo, planned, "%d of %d files would be created", pending, len(planned))
		return nil
	}

	out := ui.Stdout()
	for _, p := range planned {
		action := "create"
		if p.Exists {
			action = "exists"
		}
		fmt.Fprintf(out, "%-6s %s\n", action, p.Path)
	}
	ui.Info("%d of %d files would be created", pending, len(planned))
	return nil
}
