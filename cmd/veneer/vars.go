// Package main provides the entry point for the veneer CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldnotes-dev/veneer/internal/output"
	"github.com/fieldnotes-dev/veneer/internal/vars"
	"github.com/fieldnotes-dev/veneer/internal/walk"
)

// newVarsCmd creates the vars command.
func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars <var-dirs>",
		Short: "Show the merged variable namespace",
		Long: `Load the variable directories and print the merged namespace with
effective post-merge values, so collisions can be inspected before a
render.

Examples:
  veneer vars ./vars
  veneer vars "./common;./prod" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVars(cmd, args[0])
		},
	}
}

// runVars executes the vars command.
func runVars(cmd *cobra.Command, varArg string) error {
	printer := newPrinter(cmd)

	varDirs := splitDirs(varArg)
	if len(varDirs) == 0 {
		err := output.NewUserError("no variable directories given")
		printer.Error(err)
		return err
	}

	if err := walk.EnsureDirectories(varDirs); err != nil {
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

	if printer.IsJSON() {
		return printer.WriteJSON(ns)
	}

	rows := make([][]string, 0, len(ns))
	for _, key := range ns.Keys() {
		rows = append(rows, []string{key, fmt.Sprintf("%v", ns[key])})
	}
	printer.Table([]string{"NAME", "VALUE"}, rows)
	printer.Println(fmt.Sprintf("%d variable(s) defined", len(ns)))
	return nil
}
