package main

import (
	"fmt"
	"path/filepath"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/markdown"
)

// Run executes the diff command. Both sides are rendered as the graph's
// outline so the comparison is structural, not textual: the remote page
// as it stands against the outline the local file would produce.
func (c *DiffCmd) Run(deps *Dependencies) error {
	content, err := deps.Pages.GetPage(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}
	remote := notegraph.FormatRemoteBlocks(content.Blocks, -1)

	raw, err := readContent(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	local := notegraph.FormatBatchBlocks(markdown.Parse(raw).Batch())

	if remote != "" {
		remote += "\n"
	}
	if local != "" {
		local += "\n"
	}

	if remote == local {
		fmt.Fprintf(deps.Stdout, "Page %q matches %s\n", c.Name, c.File)
		return nil
	}

	pageName := "page:" + c.Name
	fileName := filepath.Base(c.File)
	edits := myers.ComputeEdits(span.URIFromPath(pageName), remote, local)
	fmt.Fprint(deps.Stdout, gotextdiff.ToUnified(pageName, fileName, remote, edits))
	return nil
}
