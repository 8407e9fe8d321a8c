package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/markdown"
)

var _ notegraph.ToolHandler = (*UpdatePageHandler)(nil)

// UpdatePageHandler adds content to an existing page, either appending
// after the current blocks or replacing them.
type UpdatePageHandler struct {
	pages notegraph.PageService
}

// NewUpdatePageHandler creates a new UpdatePageHandler.
func NewUpdatePageHandler(pages notegraph.PageService) *UpdatePageHandler {
	return &UpdatePageHandler{pages: pages}
}

// Spec describes the tool and its input schema.
func (h *UpdatePageHandler) Spec() notegraph.ToolSpec {
	return notegraph.ToolSpec{
		Name: "update_page",
		Description: `Update a page with new content and/or properties.

Supports two modes:
- append: Add new blocks after existing content (default)
- replace: Clear all existing blocks and add new content

Markdown is parsed into proper block hierarchy just like create_page.
YAML frontmatter in content will be merged with explicit properties.`,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"page_name": map[string]any{
					"type":        "string",
					"description": "Name of the page to update",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "Markdown content to add or replace with",
				},
				"mode": map[string]any{
					"type":        "string",
					"enum":        []string{"append", "replace"},
					"default":     "append",
					"description": "append: add after existing content. replace: clear page and add new content.",
				},
				"properties": map[string]any{
					"type":                 "object",
					"description":          "Page properties to set/update",
					"additionalProperties": true,
				},
			},
			"required": []string{"page_name"},
		},
	}
}

// Run executes the tool with the given arguments.
func (h *UpdatePageHandler) Run(ctx context.Context, args map[string]any) (string, error) {
	name, err := requireString(args, "page_name")
	if err != nil {
		return "", err
	}
	content := optString(args, "content", "")
	mode := notegraph.UpdateMode(optString(args, "mode", string(notegraph.UpdateAppend)))
	explicit := optObject(args, "properties")

	if content == "" && len(explicit) == 0 {
		return "", notegraph.Errorf(notegraph.EINVALID,
			"either content or properties must be provided")
	}

	doc := markdown.Parse(content)
	properties := notegraph.MergeProperties(doc.Properties, explicit)

	result, err := h.pages.UpdatePage(ctx, name, doc.Batch(), properties, mode)
	if err != nil {
		return "", err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Updated page %q", name)
	if result.Cleared {
		msg.WriteString("\n  - Existing content cleared")
	}
	if result.BlocksAdded > 0 {
		fmt.Fprintf(&msg, "\n  - %d block(s) added", result.BlocksAdded)
	}
	if result.PropertiesSet > 0 {
		fmt.Fprintf(&msg, "\n  - %d properties updated", result.PropertiesSet)
	}
	fmt.Fprintf(&msg, "\nMode: %s", mode)
	return msg.String(), nil
}
