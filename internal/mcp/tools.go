package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fieldnotes-dev/veneer/internal/template"
	"github.com/fieldnotes-dev/veneer/internal/vars"
)

// --- render_text tool ---

// RenderTextInput is the input for the render_text tool.
type RenderTextInput struct {
	Text      string         `json:"text"                jsonschema:"template text to render"`
	BasePath  string         `json:"base_path,omitempty" jsonschema:"path fragment references resolve relative to (defaults to the working directory)"`
	Variables map[string]any `json:"variables,omitempty" jsonschema:"extra variables overlaid on the loaded namespace"`
}

// RenderTextOutput is the output for the render_text tool.
type RenderTextOutput struct {
	Rendered  string   `json:"rendered"            jsonschema:"final rendered text"`
	Undefined []string `json:"undefined,omitempty" jsonschema:"referenced variable names absent from the namespace"`
}

func handleRenderText(ns vars.Namespace) mcp.ToolHandlerFor[RenderTextInput, RenderTextOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderTextInput) (*mcp.CallToolResult, RenderTextOutput, error) {
		// Overlay per-call variables without mutating the shared namespace.
		effective := vars.Namespace{}
		effective.Merge(ns)
		effective.Merge(input.Variables)

		renderer := &template.Renderer{Namespace: effective}
		rendered, undefined, err := renderer.RenderText(input.Text, basePath(input.BasePath))
		if err != nil {
			return nil, RenderTextOutput{}, fmt.Errorf("rendering text: %w", err)
		}

		return nil, RenderTextOutput{Rendered: rendered, Undefined: undefined}, nil
	}
}

// --- scan_variables tool ---

// ScanVariablesInput is the input for the scan_variables tool.
type ScanVariablesInput struct {
	Text string `json:"text" jsonschema:"template text to scan"`
}

// ScanVariablesOutput is the output for the scan_variables tool.
type ScanVariablesOutput struct {
	Variables []string `json:"variables" jsonschema:"distinct variable names referenced in the text, sorted"`
	Count     int      `json:"count"     jsonschema:"number of distinct variables"`
}

func handleScanVariables() mcp.ToolHandlerFor[ScanVariablesInput, ScanVariablesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScanVariablesInput) (*mcp.CallToolResult, ScanVariablesOutput, error) {
		names := template.SortedVariables(input.Text)
		return nil, ScanVariablesOutput{Variables: names, Count: len(names)}, nil
	}
}

// --- resolve_fragments tool ---

// ResolveFragmentsInput is the input for the resolve_fragments tool.
type ResolveFragmentsInput struct {
	Text     string `json:"text"                jsonschema:"template text containing {{{ path }}} directives"`
	BasePath string `json:"base_path,omitempty" jsonschema:"path relative fragment references resolve against (defaults to the working directory)"`
}

// ResolveFragmentsOutput is the output for the resolve_fragments tool.
type ResolveFragmentsOutput struct {
	Resolved string `json:"resolved" jsonschema:"text with every fragment inclusion expanded"`
}

func handleResolveFragments() mcp.ToolHandlerFor[ResolveFragmentsInput, ResolveFragmentsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ResolveFragmentsInput) (*mcp.CallToolResult, ResolveFragmentsOutput, error) {
		resolved, err := template.ResolveFragments(input.Text, basePath(input.BasePath))
		if err != nil {
			return nil, ResolveFragmentsOutput{}, fmt.Errorf("resolving fragments: %w", err)
		}
		return nil, ResolveFragmentsOutput{Resolved: resolved}, nil
	}
}

// --- list_variables tool ---

// ListVariablesInput is the input for the list_variables tool (no parameters needed).
type ListVariablesInput struct{}

// ListVariablesOutput is the output for the list_variables tool.
type ListVariablesOutput struct {
	Variables []string `json:"variables" jsonschema:"defined variable names, sorted"`
	Count     int      `json:"count"     jsonschema:"number of defined variables"`
}

func handleListVariables(ns vars.Namespace) mcp.ToolHandlerFor[ListVariablesInput, ListVariablesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListVariablesInput) (*mcp.CallToolResult, ListVariablesOutput, error) {
		keys := ns.Keys()
		return nil, ListVariablesOutput{Variables: keys, Count: len(keys)}, nil
	}
}

// basePath defaults relative fragment resolution to the working directory
// when the caller does not supply a base. A synthetic filename keeps
// filepath.Dir pointing at the directory itself.
func basePath(p string) string {
	if p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd + string(os.PathSeparator) + "stdin"
}
