// Package mcp exposes legality checks over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/learnset/internal/legality"
	"github.com/louisbranch/learnset/internal/platform/i18n/names"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Learnset MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the MCP server over stdio.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server bound to the legality engine.
func New(engine *legality.Engine, catalog *names.Catalog) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("legality engine is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("name catalog is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, checkMovesTool(), checkMovesHandler(engine, catalog))
	mcp.AddTool(mcpServer, canLearnTool(), canLearnHandler(engine))

	return &Server{mcpServer: mcpServer}, nil
}

// Serve runs the MCP server on stdio until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
