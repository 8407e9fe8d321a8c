package tool

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/notegraph/notegraph"
)

var _ notegraph.ToolHandler = (*ListPagesHandler)(nil)

// ListPagesHandler lists the pages in the graph.
type ListPagesHandler struct {
	pages notegraph.PageService
}

// NewListPagesHandler creates a new ListPagesHandler.
func NewListPagesHandler(pages notegraph.PageService) *ListPagesHandler {
	return &ListPagesHandler{pages: pages}
}

// Spec describes the tool and its input schema.
func (h *ListPagesHandler) Spec() notegraph.ToolSpec {
	return notegraph.ToolSpec{
		Name:        "list_pages",
		Description: "Lists all pages in the graph.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"include_journals": map[string]any{
					"type":        "boolean",
					"description": "Whether to include journal/daily notes in the list",
					"default":     false,
				},
			},
			"required": []string{},
		},
	}
}

// Run executes the tool with the given arguments.
func (h *ListPagesHandler) Run(ctx context.Context, args map[string]any) (string, error) {
	includeJournals := optBool(args, "include_journals", false)

	pages, err := h.pages.ListPages(ctx)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, page := range pages {
		if page.Journal && !includeJournals {
			continue
		}
		name := page.DisplayName()
		if name == "" {
			continue
		}
		line := "- " + name
		if page.Journal {
			line += " [journal]"
		}
		lines = append(lines, line)
	}
	sort.Strings(lines)

	suffix := " (excluding journal pages)"
	if includeJournals {
		suffix = " (including journal pages)"
	}

	var msg strings.Builder
	msg.WriteString("Pages:\n\n")
	msg.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&msg, "\nTotal pages: %d%s", len(lines), suffix)
	return msg.String(), nil
}
