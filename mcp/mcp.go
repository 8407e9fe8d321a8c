// Package mcp exposes notegraph tool handlers over the Model Context
// Protocol, so agent clients can drive the note graph through a stdio
// server.
package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/notegraph/notegraph"
)

// ServerName identifies this server to MCP clients.
const ServerName = "notegraph"

// Server wraps an MCP server with notegraph tool handlers registered.
type Server struct {
	mcp    *server.MCPServer
	logger *slog.Logger
}

// NewServer creates an MCP server exposing the given tool handlers.
func NewServer(version string, handlers []notegraph.ToolHandler, logger *slog.Logger) *Server {
	s := &Server{
		mcp:    server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false)),
		logger: logger,
	}
	for _, h := range handlers {
		s.mcp.AddTool(convertTool(h.Spec()), s.adaptHandler(h))
	}
	return s
}

// ServeStdio serves MCP requests over the given reader and writer until
// the context is canceled or the input stream closes.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// convertTool renders a tool spec as an MCP tool declaration. The input
// schema is already a JSON Schema object, so it is passed through raw.
func convertTool(spec notegraph.ToolSpec) mcp.Tool {
	schema, err := json.Marshal(spec.InputSchema)
	if err != nil {
		// Schemas are static literals; a marshal failure is a
		// programming error.
		panic(err)
	}
	return mcp.NewToolWithRawSchema(spec.Name, spec.Description, schema)
}

// adaptHandler bridges a notegraph.ToolHandler into an MCP tool
// handler. Application errors are reported as tool errors with their
// user-facing message, so the client sees a result rather than a
// protocol failure.
func (s *Server) adaptHandler(h notegraph.ToolHandler) server.ToolHandlerFunc {
	name := h.Spec().Name
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func(begin time.Time) {
			s.logger.Info("tool call",
				"tool", name,
				"duration", time.Since(begin),
				"isError", result != nil && result.IsError,
				"err", err,
			)
		}(time.Now())

		text, runErr := h.Run(ctx, request.GetArguments())
		if runErr != nil {
			return mcp.NewToolResultError(notegraph.ErrorMessage(runErr)), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}
