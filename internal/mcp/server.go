// Package mcp provides a Model Context Protocol server for chfmt.
// It exposes record extraction and rendering as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all chfmt tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "chfmt",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools. Both chfmt
// tools are pure functions of their input.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all chfmt tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "extract",
		Description: "Extract timestamped records from loosely-structured JSON text. " +
			"Tolerates missing brackets, trailing commas, NDJSON, and concatenated objects.",
		Annotations: readOnlyAnnotations(),
	}, handleExtract())

	mcp.AddTool(server, &mcp.Tool{
		Name: "render",
		Description: "Extract records from loosely-structured JSON text and render them " +
			"as human-readable, line-wrapped text blocks with timestamp prefixes.",
		Annotations: readOnlyAnnotations(),
	}, handleRender())
}
