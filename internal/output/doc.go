// Package output provides structured output handling for the stencil CLI.
//
// This package handles both human-readable and JSON output formats so every
// command works equally well for people and for scripts.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Copied to clipboard"})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped.
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, template not found, invalid templates)
//	output.ExitSystemError // 2: System error (I/O failure, clipboard failure)
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("template not found: shakespeare")
//	output.NewSystemError("clipboard copy failed")
//
// These errors carry exit codes that are used for both JSON error output
// and the process exit code.
package output
