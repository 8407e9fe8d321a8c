package main

import (
	"fmt"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/mcp"
	"github.com/notegraph/notegraph/tool"
)

// Run executes the serve command. It blocks, speaking MCP over stdio
// until the client closes the stream or the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	handlers := tool.Handlers(deps.Pages)
	srv := mcp.NewServer(deps.Version, handlers, deps.Logger)

	deps.Logger.Info("mcp server starting", "version", deps.Version, "tools", len(handlers))

	if err := srv.ServeStdio(deps.Ctx, deps.Stdin, deps.Stdout); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}
	return nil
}
