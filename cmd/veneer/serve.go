// Package main provides the entry point for the veneer CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	veneermcp "github.com/fieldnotes-dev/veneer/internal/mcp"
	"github.com/fieldnotes-dev/veneer/internal/vars"
	"github.com/fieldnotes-dev/veneer/internal/walk"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var varsFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run veneer as a Model Context Protocol (MCP) server over stdio.

This exposes the template-resolution core as MCP tools that any
MCP-capable agent environment can use (Claude Code, Cursor, Windsurf,
Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "veneer": {
        "command": "veneer",
        "args": ["serve", "--vars", "./vars"]
      }
    }
  }

Available tools: render_text, scan_variables, resolve_fragments, list_variables`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns := vars.Namespace{}
			if varsFlag != "" {
				varDirs := splitDirs(varsFlag)
				if err := walk.EnsureDirectories(varDirs); err != nil {
					return toExitError(err)
				}
				loaded, err := vars.Load(varDirs)
				if err != nil {
					return toExitError(err)
				}
				ns = loaded
			}
			server := veneermcp.NewServer(buildVersion(), ns)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().StringVar(&varsFlag, "vars", "", "Semicolon-separated variable directories to load")

	return cmd
}
