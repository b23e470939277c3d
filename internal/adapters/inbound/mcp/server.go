package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewNugateMCPServer creates an MCP server with the nugate validation tools
// and resources registered. The projectPath is the root directory whose
// configuration and scripts the tools operate on.
func NewNugateMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"nugate",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
