package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/scaffold/internal/configschema"
	"go.eggybyte.com/scaffold/internal/projectfs"
	"go.eggybyte.com/scaffold/internal/ui"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter scaffold.yaml",
	Long: `Write a starter scaffold.yaml into the project root. An existing file is
kept unless --force is given.

Example:
  scaffold init
  scaffold init --root ./my-course --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(initRoot, initForce)
	},
}

var (
	initRoot  string
	initForce bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initRoot, "root", ".", "Project root directory")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing scaffold.yaml")
}

const starterHeader = `# scaffold configuration.
# Precedence: this file < SCAFFOLD_* environment (and .env) < command-line flags.
`

// runInit writes the starter configuration file.
func runInit(root string, force bool) error {
	data, err := configschema.Marshal(configschema.Starter())
	if err != nil {
		return err
	}
	content := starterHeader + string(data)

	fs := projectfs.NewProjectFS(root)
	fs.SetVerbose(verbose)

	if force {
		if err := fs.WriteFile(configschema.DefaultFileName, content, projectfs.FileMode); err != nil {
			return err
		}
		ui.Success("Wrote %s", fs.GetAbsolutePath(configschema.DefaultFileName))
		return nil
	}

	created, err := fs.WriteFileIfNotExists(configschema.DefaultFileName, content, projectfs.FileMode)
	if err != nil {
		return err
	}
	if !created {
		ui.Warning("%s already exists, use --force to overwrite", fs.GetAbsolutePath(configschema.DefaultFileName))
		return nil
	}

	ui.Success("Created %s", fs.GetAbsolutePath(configschema.DefaultFileName))
	ui.Info("Next steps:")
	ui.Info("  1. Edit packages, classes and series")
	ui.Info("  2. Preview the files: scaffold plan")
	ui.Info("  3. Create them: scaffold generate")
	return nil
}
