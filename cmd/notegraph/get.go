package main

import (
	"encoding/json"
	"fmt"

	"github.com/notegraph/notegraph"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	content, err := deps.Pages.GetPage(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}

	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(content)
	}

	text := notegraph.FormatRemoteBlocks(content.Blocks, c.MaxDepth)
	if text == "" {
		fmt.Fprintln(deps.Stdout, "-")
		return nil
	}
	fmt.Fprintln(deps.Stdout, text)
	return nil
}
