package main

import (
	"fmt"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/markdown"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	content, err := readContent(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	doc := markdown.Parse(content)

	result, err := deps.Pages.UpdatePage(deps.Ctx, c.Name, doc.Batch(), doc.Properties, notegraph.UpdateMode(c.Mode))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated page %q (mode: %s)\n", c.Name, result.Mode)
	if result.Cleared {
		fmt.Fprintln(deps.Stdout, "Existing content cleared")
	}
	if result.BlocksAdded > 0 {
		fmt.Fprintf(deps.Stdout, "Added %d block(s)\n", result.BlocksAdded)
	}
	if result.PropertiesSet > 0 {
		fmt.Fprintf(deps.Stdout, "Updated %d properties\n", result.PropertiesSet)
	}
	return nil
}
