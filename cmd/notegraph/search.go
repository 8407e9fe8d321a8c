package main

import (
	"fmt"
	"strings"

	"github.com/notegraph/notegraph"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	result, err := deps.Pages.Search(deps.Ctx, c.Query, notegraph.SearchOptions{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}

	found := false

	if len(result.Blocks) > 0 {
		found = true
		fmt.Fprintf(deps.Stdout, "Blocks (%d):\n", len(result.Blocks))
		for _, block := range result.Blocks {
			content := strings.TrimSpace(block.Content)
			if content == "" {
				continue
			}
			fmt.Fprintf(deps.Stdout, "  %s\n", firstLine(content))
		}
	}

	if len(result.Pages) > 0 {
		found = true
		fmt.Fprintf(deps.Stdout, "Pages (%d):\n", len(result.Pages))
		for _, page := range result.Pages {
			fmt.Fprintf(deps.Stdout, "  %s\n", page)
		}
	}

	if c.Files && len(result.Files) > 0 {
		found = true
		fmt.Fprintf(deps.Stdout, "Files (%d):\n", len(result.Files))
		for _, file := range result.Files {
			fmt.Fprintf(deps.Stdout, "  %s\n", file)
		}
	}

	if !found {
		fmt.Fprintf(deps.Stdout, "No results for %q\n", c.Query)
		return nil
	}

	if result.HasMore {
		fmt.Fprintln(deps.Stdout, "\nMore results available; increase --limit to see more.")
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
