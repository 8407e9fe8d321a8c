package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/markdown"
)

// Run executes the parse command. It never talks to the graph, which
// makes it useful for previewing how a file will be structured before
// creating or syncing it.
func (c *ParseCmd) Run(deps *Dependencies) error {
	content, err := readContent(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	doc := markdown.Parse(content)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"properties": doc.Properties,
			"blocks":     doc.Batch(),
		})
	}

	if len(doc.Properties) > 0 {
		fmt.Fprintln(deps.Stdout, "Properties:")
		keys := make([]string, 0, len(doc.Properties))
		for k := range doc.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(deps.Stdout, "  %s: %v\n", k, doc.Properties[k])
		}
		fmt.Fprintln(deps.Stdout)
	}

	outline := notegraph.FormatBatchBlocks(doc.Batch())
	if outline == "" {
		outline = "-"
	}
	fmt.Fprintln(deps.Stdout, outline)
	return nil
}
