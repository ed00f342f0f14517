// Package main provides the entry point for the veneer CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldnotes-dev/veneer/internal/template"
)

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "scan <template-file>",
		Short: "List variables referenced by a template",
		Long: `Expand a template's fragment inclusions and list the distinct variable
names it references via {{ name }} substitution syntax.

With --raw the fragment expansion step is skipped, showing only the
variables referenced by the file itself.

Examples:
  veneer scan ./templates/readme.md
  veneer scan ./templates/readme.md --raw --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], rawFlag)
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Skip fragment expansion before scanning")

	return cmd
}

// runScan executes the scan command.
func runScan(cmd *cobra.Command, templatePath string, raw bool) error {
	printer := newPrinter(cmd)

	data, err := os.ReadFile(templatePath)
	if err != nil {
		exitErr := toExitError(&template.MissingTemplateError{Path: templatePath, Err: err})
		printer.Error(exitErr)
		return exitErr
	}

	text := string(data)
	if !raw {
		text, err = template.ResolveFragments(text, templatePath)
		if err != nil {
			exitErr := toExitError(err)
			printer.Error(exitErr)
			return exitErr
		}
	}

	names := template.SortedVariables(text)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"template": templatePath, "variables": names})
	}
	for _, name := range names {
		printer.Println(name)
	}
	return nil
}
