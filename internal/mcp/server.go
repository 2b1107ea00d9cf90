// Package mcp exposes the calculation registry as Model Context Protocol
// tools so that MCP clients can run calculations over stdio.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/gocalc/pkg/calculation"
)

// ServerName is reported to MCP clients during initialization
const ServerName = "gocalc-mcp"

// CalcServer holds the shared state for the MCP tool handlers
type CalcServer struct {
	registry *calculation.Registry
	logger   *slog.Logger
}

// NewCalcServer creates the handler state for registry
func NewCalcServer(registry *calculation.Registry, logger *slog.Logger) *CalcServer {
	return &CalcServer{
		registry: registry,
		logger:   logger,
	}
}

// NewMCPServer builds an MCP server with every gocalc tool registered
func NewMCPServer(state *CalcServer, version string) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
	)
	RegisterAllTools(s, state)
	return s
}
