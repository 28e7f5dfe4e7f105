// Package main provides the scaffold CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution, cancelled on SIGINT/SIGTERM
//   - Error Semantics: Exit code 1 on any failed file, configuration error or interruption
//   - Performance Notes: Fast startup, minimal initialization
//
// Usage:
//
//	scaffold [command] [flags]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go.eggybyte.com/scaffold/core/log"
	"go.eggybyte.com/scaffold/internal/ui"
	"go.eggybyte.com/scaffold/logx"
)

var (
	verbose    bool
	jsonOutput bool
	logFormat  string
	logLevel   string

	// logger is configured from the global flags before any command runs.
	logger = log.Nop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Paired source and test file scaffolding for JVM projects",
	Long: `scaffold creates a source file and a matching unit test file for every
combination of package and class name in a Gradle-style project layout.

Existing files are never overwritten, so the command is safe to re-run.

All commands read scaffold.yaml, SCAFFOLD_* environment variables and flags.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
}

// setupOutput applies the global output and logging flags.
func setupOutput(cmd *cobra.Command, args []string) error {
	ui.SetVerbose(verbose)
	ui.SetJSONOutput(jsonOutput)

	level, err := logx.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if verbose && !cmd.Flags().Changed("log-level") {
		level, _ = logx.ParseLevel("debug")
	}

	format, err := logx.ParseFormat(logFormat)
	if err != nil {
		return err
	}

	logger = logx.New(
		logx.WithFormat(format),
		logx.WithLevel(level),
		logx.WithWriter(cmd.ErrOrStderr()),
	)
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error("Command failed: %v", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "logfmt", "Log format: logfmt or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	// Add version flags (--version and -v)
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

// main is the entry point for the scaffold CLI tool.
func main() {
	os.Exit(Execute())
}
