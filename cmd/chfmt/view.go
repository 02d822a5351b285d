// Package main provides the entry point for the chfmt CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/chfmt/internal/config"
	"github.com/gorewood/chfmt/internal/output"
	"github.com/gorewood/chfmt/internal/record"
	"github.com/gorewood/chfmt/internal/render"
)

// viewFlagVars holds the flag variable pointers for the root command.
type viewFlagVars struct {
	trim        *int
	width       *int
	timestamp   *bool
	noTimestamp *bool
	color       *string
}

// viewFlags holds the parsed flag values for a single run.
type viewFlags struct {
	trim        int
	width       int
	timestamp   bool
	noTimestamp bool
	color       string
}

// newViewFlagVars creates initialized flag variable pointers.
func newViewFlagVars() *viewFlagVars {
	return &viewFlagVars{
		trim:        new(int),
		width:       new(int),
		timestamp:   new(bool),
		noTimestamp: new(bool),
		color:       new(string),
	}
}

// toViewFlags converts flag vars to a viewFlags struct.
func (vars *viewFlagVars) toViewFlags() viewFlags {
	return viewFlags{
		trim:        *vars.trim,
		width:       *vars.width,
		timestamp:   *vars.timestamp,
		noTimestamp: *vars.noTimestamp,
		color:       *vars.color,
	}
}

// registerViewFlags registers all flags on the root command.
func registerViewFlags(cmd *cobra.Command, vars *viewFlagVars) {
	cmd.Flags().IntVar(vars.trim, "trim", 0, "Truncate display text to N words, appending '...' if trimmed")
	cmd.Flags().IntVar(vars.width, "width", 0, "Wrap to N columns instead of the detected terminal width")
	cmd.Flags().BoolVar(vars.timestamp, "timestamp", true, "Prefix each record with its timestamp (default)")
	cmd.Flags().BoolVar(vars.noTimestamp, "notimestamp", false, "Omit the timestamp prefix and use the full width")
	cmd.Flags().StringVar(vars.color, "color", "auto", "Color diagnostics: never, always, or auto")

	cmd.MarkFlagsMutuallyExclusive("timestamp", "notimestamp")
}

// runView executes the root command: read the file, extract records, and
// print one formatted block per record.
func runView(cmd *cobra.Command, path string, flags viewFlags) error {
	cfg, cfgErr := config.Load()
	if cfg == nil {
		cfg = &config.Config{}
	}

	jsonMode := isJSONMode(cmd)
	colorMode := resolveColorMode(cmd, flags, cfg)
	isTTY := output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY).WithStderr(cmd.ErrOrStderr())

	if cfgErr != nil {
		printer.Warn("ignoring defaults file: %v", cfgErr)
	}

	if err := validateViewFlags(cmd, flags); err != nil {
		printer.Error(err)
		return err
	}

	// Read the whole file up front: a file error must never follow
	// partially printed output.
	data, err := os.ReadFile(path)
	if err != nil {
		exitErr := output.NewErrorWithCause(fmt.Sprintf("cannot read %q: %v", path, err), err)
		printer.Error(exitErr)
		return exitErr
	}

	records := record.Extract(string(data))
	if len(records) == 0 {
		exitErr := output.NewError("no records found in " + path)
		printer.Error(exitErr)
		return exitErr
	}

	if jsonMode {
		return printer.WriteJSON(records)
	}

	opts := render.Options{
		Width:         resolveWidth(cmd, flags, cfg),
		TrimWords:     resolveTrim(cmd, flags, cfg),
		ShowTimestamp: resolveShowTimestamp(cmd, flags, cfg),
	}

	for i, rec := range records {
		if i > 0 {
			printer.Println()
		}
		printer.Println(render.Format(rec, opts))
	}

	return nil
}

// validateViewFlags rejects non-positive explicit values.
func validateViewFlags(cmd *cobra.Command, flags viewFlags) error {
	if cmd.Flags().Changed("trim") && flags.trim <= 0 {
		return output.NewError("--trim must be a positive number of words")
	}
	if cmd.Flags().Changed("width") && flags.width <= 0 {
		return output.NewError("--width must be a positive number of columns")
	}
	return nil
}

// resolveWidth picks the wrap width: flag, then CHFMT_WIDTH, then the
// defaults file, then the detected terminal size (120 columns when no
// terminal is attached).
func resolveWidth(cmd *cobra.Command, flags viewFlags, cfg *config.Config) int {
	if cmd.Flags().Changed("width") {
		return flags.width
	}
	if env := os.Getenv("CHFMT_WIDTH"); env != "" {
		if w, err := strconv.Atoi(env); err == nil && w > 0 {
			return w
		}
	}
	if cfg.Width > 0 {
		return cfg.Width
	}
	width, _ := output.TerminalSize(cmd.OutOrStdout())
	return width
}

// resolveTrim picks the word limit: flag, then the defaults file. Zero
// disables trimming.
func resolveTrim(cmd *cobra.Command, flags viewFlags, cfg *config.Config) int {
	if cmd.Flags().Changed("trim") {
		return flags.trim
	}
	return cfg.Trim
}

// resolveShowTimestamp picks timestamp visibility: explicit flags, then
// the defaults file, then show.
func resolveShowTimestamp(cmd *cobra.Command, flags viewFlags, cfg *config.Config) bool {
	if flags.noTimestamp {
		return false
	}
	if cmd.Flags().Changed("timestamp") {
		return flags.timestamp
	}
	if cfg.Timestamp != nil {
		return *cfg.Timestamp
	}
	return true
}

// resolveColorMode picks the diagnostics color mode: flag, then
// CHFMT_COLOR, then the defaults file, then auto.
func resolveColorMode(cmd *cobra.Command, flags viewFlags, cfg *config.Config) string {
	if cmd.Flags().Changed("color") {
		return flags.color
	}
	if env := os.Getenv("CHFMT_COLOR"); env != "" {
		return env
	}
	if cfg.Color != "" {
		return cfg.Color
	}
	return "auto"
}
