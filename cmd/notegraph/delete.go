package main

import (
	"fmt"

	"github.com/notegraph/notegraph"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return notegraph.Errorf(notegraph.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Pages.DeletePage(deps.Ctx, c.Name); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted page %q\n", c.Name)
	return nil
}
