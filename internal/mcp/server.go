// Package mcp provides a Model Context Protocol server for veneer.
// It exposes the template-resolution core as MCP tools that any MCP-capable
// agent can use to expand fragments, scan variable usage, and render text.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fieldnotes-dev/veneer/internal/vars"
)

// NewServer creates an MCP server with all veneer tools registered.
// The namespace is the merged variable set tools render against; callers
// may pass an empty Namespace when no variable sources were loaded.
func NewServer(version string, ns vars.Namespace) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "veneer",
		Version: version,
	}, nil)
	registerTools(server, ns)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
// Every veneer tool is read-only: rendering over MCP never writes files.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all veneer tools to the server.
func registerTools(server *mcp.Server, ns vars.Namespace) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_text",
		Description: "Render template text: expand {{{ path }}} fragment inclusions, report undefined variables, and substitute {{ name }} references from the loaded namespace plus any extra variables.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderText(ns))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_variables",
		Description: "List the distinct variable names referenced via {{ name }} substitution syntax in a piece of template text.",
		Annotations: readOnlyAnnotations(),
	}, handleScanVariables())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_fragments",
		Description: "Expand every {{{ path }}} fragment inclusion in template text, resolving relative references against the given base path, without substituting variables.",
		Annotations: readOnlyAnnotations(),
	}, handleResolveFragments())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_variables",
		Description: "List the variable names defined in the merged namespace the server was started with.",
		Annotations: readOnlyAnnotations(),
	}, handleListVariables(ns))
}
