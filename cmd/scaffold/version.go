package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/scaffold/internal/ui"
	"go.eggybyte.com/scaffold/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show scaffold version information",
	Long: `Display version information for the scaffold CLI tool.

This command shows:
  • CLI version, git commit hash, and build timestamp
  • Go runtime version and platform`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	// Add --version and -v flags to root command
	rootCmd.Version = version.GetVersionString()
	rootCmd.SetVersionTemplate(`{{.Version}}
`)
}

// runVersion executes the version command.
func runVersion(cmd *cobra.Command, args []string) {
	if ui.JSONOutput() {
		ui.Result(ui.LevelInfo, version.Get(), "%s", version.GetVersionString())
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersionInfo())
}
