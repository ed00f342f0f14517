// Package main provides the entry point for the veneer CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldnotes-dev/veneer/internal/output"
	"github.com/fieldnotes-dev/veneer/internal/template"
	"github.com/fieldnotes-dev/veneer/internal/vars"
	"github.com/fieldnotes-dev/veneer/internal/walk"
)

// checkFinding describes one template with undefined variables.
type checkFinding struct {
	Template  string   `json:"template"`
	Undefined []string `json:"undefined"`
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <template-dirs> [var-dirs]",
		Short: "Report undefined variables without rendering",
		Long: `Expand fragments and scan variable usage for every .md template under
the template directories, reporting templates that reference variables
absent from the merged namespace. Nothing is rendered or written.

Exits non-zero when any template has undefined variables, so check works
as a CI gate.

Examples:
  veneer check ./templates ./vars
  veneer check "./base;./overrides"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			varArg := ""
			if len(args) > 1 {
				varArg = args[1]
			}
			return runCheck(cmd, args[0], varArg)
		},
	}
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, templateArg, varArg string) error {
	printer := newPrinter(cmd)

	templateDirs := splitDirs(templateArg)
	varDirs := splitDirs(varArg)
	if len(templateDirs) == 0 {
		err := output.NewUserError("no template directories given")
		printer.Error(err)
		return err
	}

	if err := walk.EnsureDirectories(append(append([]string{}, templateDirs...), varDirs...)); err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	ns, err := vars.Load(varDirs)
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	renderer := &template.Renderer{Namespace: ns}

	checked := 0
	var findings []checkFinding
	for _, root := range templateDirs {
		entries, err := walk.Templates(root)
		if err != nil {
			exitErr := toExitError(err)
			printer.Error(exitErr)
			return exitErr
		}
		for _, entry := range entries {
			missing, err := renderer.Check(entry.Path)
			if err != nil {
				exitErr := toExitError(err)
				printer.Error(exitErr)
				return exitErr
			}
			checked++
			if len(missing) > 0 {
				findings = append(findings, checkFinding{Template: entry.Path, Undefined: missing})
			}
		}
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(map[string]any{"checked": checked, "findings": findings}); err != nil {
			return err
		}
	} else {
		for _, finding := range findings {
			printer.Warn("undefined variables in %s: %s", finding.Template, strings.Join(finding.Undefined, ", "))
		}
		printer.Println(fmt.Sprintf("Checked %d template(s), %d with undefined variables", checked, len(findings)))
	}

	if len(findings) > 0 {
		return output.NewUserError(fmt.Sprintf("%d template(s) reference undefined variables", len(findings)))
	}
	return nil
}
