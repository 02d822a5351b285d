// Package output provides structured output handling for the chfmt CLI.
//
// This package handles both human-readable and JSON output formats, so the
// same extraction pipeline serves interactive terminals and automated
// consumers alike.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches
// format based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// Record blocks and raw output
//	printer.Println(block)
//	printer.Print("%s\n", block)
//
//	// Diagnostics (stderr in human mode)
//	printer.Error(err)
//	printer.Warn("ignoring bad config: %v", err)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json), records are emitted as a JSON
// array and errors as {"error": "message", "code": N} on the main writer.
//
// # Styling
//
// Diagnostics use lipgloss styles that disable automatically when output
// is piped. Record blocks are never styled: the formatter's hanging-indent
// arithmetic relies on plain text widths.
//
// # Exit Codes
//
// The package defines the exit codes and the error type that carries them:
//
//	output.ExitSuccess // 0: one or more records rendered
//	output.ExitFailure // 1: unreadable file, no records found, bad flags
//
//	output.NewError("no records found")
//	output.NewErrorWithCause("reading input", err)
//
// main extracts the process exit code with output.GetExitCode(err).
//
// # Terminal Size
//
// TerminalSize reports the controlling terminal's dimensions, falling back
// to 120x24 columns when no terminal is attached.
package output
