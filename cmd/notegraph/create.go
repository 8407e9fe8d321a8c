package main

import (
	"fmt"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/markdown"
)

// Run executes the create command.
func (c *CreateCmd) Run(deps *Dependencies) error {
	content, err := readContent(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	doc := markdown.Parse(content)
	blocks := doc.Batch()

	if _, err := deps.Pages.CreatePage(deps.Ctx, c.Title, blocks, doc.Properties); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created page %q with %d top-level block(s)\n", c.Title, len(blocks))
	if len(doc.Properties) > 0 {
		fmt.Fprintf(deps.Stdout, "Set %d page properties\n", len(doc.Properties))
	}
	return nil
}
