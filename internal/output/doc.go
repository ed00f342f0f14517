// Package output provides structured output handling for the veneer CLI.
//
// The Printer is the single interface commands write through. It switches
// between human-readable output (lipgloss-styled when the destination is a
// TTY) and JSON output (--json flag):
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Println("Processed docs/readme.md")
//	printer.Warn("undefined variables in %s: %s", path, names)
//	printer.Error(err)
//
// Undefined-variable diagnostics go through Warn: a warning line per
// template in human mode, a {"warning": ...} object in JSON mode. Warnings
// never affect the exit code.
//
// Errors carry exit codes via ExitError:
//
//	output.ExitSuccess     // 0: run completed
//	output.ExitUserError   // 1: bad arguments, missing template/fragment/data
//	output.ExitSystemError // 2: I/O failure
package output
