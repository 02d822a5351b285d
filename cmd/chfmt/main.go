// Package main provides the entry point for the chfmt CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/gorewood/chfmt/internal/config"
	"github.com/gorewood/chfmt/internal/envfile"
	"github.com/gorewood/chfmt/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the chfmt CLI.
func newRootCmd() *cobra.Command {
	flags := newViewFlagVars()

	cmd := &cobra.Command{
		Use:   "chfmt <file>",
		Short: "Display JSON records in human-readable form",
		Long: `Chfmt - Convert a JSON file of timestamped records to human-readable output.

Each record may carry two recognized keys:
  "timestamp" - Unix time in milliseconds
  "display"   - text to display

The input does not have to be valid JSON. Chfmt recovers records from
files with missing outer brackets, trailing commas, newline-delimited
objects, and even concatenated objects buried in non-JSON noise.

Output is word-wrapped to the terminal width, with continuation lines
aligned under the text column. Use --json for structured output.`,
		Args:          cobra.ExactArgs(1),
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], flags.toViewFlags())
		},
	}

	// Load .env.local (then .env) for option overrides that can't be
	// exported to env. Environment variables always take precedence over
	// file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	// Add persistent --json flag (available to all subcommands)
	cmd.PersistentFlags().Bool("json", false, "Output extracted records as JSON")

	registerViewFlags(cmd, flags)

	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-directory override, gitignored)
//  2. $CWD/.env         (per-directory)
//  3. ~/.config/chfmt/env (global fallback)
//
// Recognized variables: CHFMT_WIDTH, CHFMT_COLOR.
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}
