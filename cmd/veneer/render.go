// Package main provides the entry point for the veneer CLI.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldnotes-dev/veneer/internal/output"
	"github.com/fieldnotes-dev/veneer/internal/template"
	"github.com/fieldnotes-dev/veneer/internal/vars"
	"github.com/fieldnotes-dev/veneer/internal/walk"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var strictFlag bool

	cmd := &cobra.Command{
		Use:   "render <template-dirs> <var-dirs> <output-dir>",
		Short: "Render template trees into an output directory",
		Long: `Render every .md template under the template directories, mirroring
relative paths under the output directory.

<template-dirs> and <var-dirs> are semicolon-separated lists; pass "" for
an empty variable list. Variable files (.yaml or .yml) are merged in
argument order, later directories winning on key collisions; within one
directory files merge in sorted path order.

Examples:
  veneer render ./templates ./vars ./out
  veneer render "./base;./overrides" "./common;./prod" ./out
  veneer render ./templates "" ./out --strict`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], args[1], args[2], strictFlag)
		},
	}

	cmd.Flags().BoolVar(&strictFlag, "strict", false, "Fail on undefined variables instead of warning")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, templateArg, varArg, outputDir string, strict bool) error {
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
	if info, err := os.Stat(outputDir); err == nil && !info.IsDir() {
		exitErr := toExitError(&walk.NotADirectoryError{Path: outputDir})
		printer.Error(exitErr)
		return exitErr
	}

	ns, err := vars.Load(varDirs)
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	renderer := &template.Renderer{
		Namespace: ns,
		Strict:    strict,
		Sink: func(d template.Diagnostic) {
			printer.Warn("undefined variables in %s: %s", d.TemplatePath, strings.Join(d.Missing, ", "))
		},
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		exitErr := output.NewSystemErrorWithCause("creating output directory: "+err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	processed := 0
	err = walk.Mirror(templateDirs, outputDir, renderer.Render, func(entry walk.Entry) {
		processed++
		if !printer.IsJSON() {
			printer.Println("Processed " + entry.Rel)
		}
	})
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"processed": processed, "output": outputDir})
	}
	return nil
}
