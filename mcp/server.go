// Package mcp exposes the styling toolkit over the Model Context Protocol so
// agent hosts can drive edits through stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/adalundhe/restyle/core/tools"
)

const (
	serverName    = "Restyle MCP"
	serverVersion = "0.1.0"
)

// Server wraps an MCP server wired to a styling toolkit.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer builds an MCP server exposing the toolkit's operations as tools
// and the preset catalog as a readable resource.
func NewServer(toolkit *tools.Toolkit) *Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	registerTools(server, toolkit)
	registerResources(server, toolkit)

	return &Server{mcpServer: server}
}

// Serve runs the server over stdio until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return err
}
