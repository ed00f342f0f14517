// Package main provides the entry point for the veneer CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fieldnotes-dev/veneer/internal/config"
	"github.com/fieldnotes-dev/veneer/internal/envfile"
	"github.com/fieldnotes-dev/veneer/internal/output"
	"github.com/fieldnotes-dev/veneer/internal/template"
	"github.com/fieldnotes-dev/veneer/internal/vars"
	"github.com/fieldnotes-dev/veneer/internal/walk"
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

// colorMode reads the --color persistent flag from the command hierarchy.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "auto"
	}
	return flag.Value.String()
}

// newPrinter builds the printer for a command, honoring --json and --color.
// Warnings and errors go to stderr in human mode.
func newPrinter(cmd *cobra.Command) *output.Printer {
	w := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(w))
	return output.NewPrinter(w, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
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

// newRootCmd creates the root command for the veneer CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "veneer",
		Short: "Render Markdown template trees with YAML variables",
		Long: `Veneer renders a directory tree of Markdown templates by substituting
variables merged from YAML files, mirroring the tree under an output root.

Templates may inline external file fragments with {{{ path }}} before
substitution; paths resolve relative to the including file, so fragment
libraries nest and relocate cleanly. Variables referenced as {{ name }}
but defined nowhere are reported as warnings without stopping the run.

Directory arguments accept semicolon-separated lists; when two sources
define the same variable, the later one wins.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := newPrinter(cmd)
				err := output.NewUserError("no command specified. Run 'veneer --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for local overrides like VENEER_COLOR.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", defaultColorMode(), "Color output: auto, always, or never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// defaultColorMode returns the --color default, honoring VENEER_COLOR.
func defaultColorMode() string {
	if mode := os.Getenv("VENEER_COLOR"); mode != "" {
		return mode
	}
	return "auto"
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-project override, gitignored)
//  2. $CWD/.env         (per-project)
//  3. ~/.config/veneer/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "inspect", Title: "Inspect Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newRenderCmd(), "core")
	addGroupedCommand(cmd, newCheckCmd(), "core")

	addGroupedCommand(cmd, newVarsCmd(), "inspect")
	addGroupedCommand(cmd, newScanCmd(), "inspect")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// splitDirs splits a semicolon-separated directory list, trimming
// whitespace and dropping empty elements so "a;;b" and "" behave sanely.
func splitDirs(arg string) []string {
	var dirs []string
	for _, dir := range strings.Split(arg, ";") {
		dir = strings.TrimSpace(dir)
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// toExitError maps core errors onto CLI exit codes: anything the user can
// fix (paths, references, data files) is a user error; the remainder is a
// system failure.
func toExitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var (
		missingTemplate *template.MissingTemplateError
		missingFragment *template.MissingFragmentError
		cyclic          *template.CyclicInclusionError
		undefined       *template.UndefinedVariablesError
		invalidData     *vars.InvalidDataFileError
		notDir          *walk.NotADirectoryError
	)
	switch {
	case errors.As(err, &missingTemplate),
		errors.As(err, &missingFragment),
		errors.As(err, &cyclic),
		errors.As(err, &undefined),
		errors.As(err, &invalidData),
		errors.As(err, &notDir):
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}
