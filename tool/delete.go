package tool

import (
	"context"
	"fmt"

	"github.com/notegraph/notegraph"
)

var _ notegraph.ToolHandler = (*DeletePageHandler)(nil)

// DeletePageHandler deletes a page by name.
type DeletePageHandler struct {
	pages notegraph.PageService
}

// NewDeletePageHandler creates a new DeletePageHandler.
func NewDeletePageHandler(pages notegraph.PageService) *DeletePageHandler {
	return &DeletePageHandler{pages: pages}
}

// Spec describes the tool and its input schema.
func (h *DeletePageHandler) Spec() notegraph.ToolSpec {
	return notegraph.ToolSpec{
		Name:        "delete_page",
		Description: "Delete a page from the graph.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"page_name": map[string]any{
					"type":        "string",
					"description": "Name of the page to delete",
				},
			},
			"required": []string{"page_name"},
		},
	}
}

// Run executes the tool with the given arguments.
func (h *DeletePageHandler) Run(ctx context.Context, args map[string]any) (string, error) {
	name, err := requireString(args, "page_name")
	if err != nil {
		return "", err
	}

	if err := h.pages.DeletePage(ctx, name); err != nil {
		return "", err
	}

	return fmt.Sprintf("Deleted page %q. The page has been permanently removed.", name), nil
}
