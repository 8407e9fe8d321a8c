package main

import (
	"fmt"
	"sort"

	"github.com/notegraph/notegraph"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.ListPages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}

	var names []string
	for _, page := range pages {
		if page.Journal && !c.Journals {
			continue
		}
		name := page.DisplayName()
		if name == "" {
			continue
		}
		if page.Journal {
			name += " [journal]"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found.")
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	fmt.Fprintf(deps.Stdout, "\nTotal: %d\n", len(names))
	return nil
}
