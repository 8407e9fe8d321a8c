package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/markdown"
)

var _ notegraph.ToolHandler = (*CreatePageHandler)(nil)

// CreatePageHandler creates a new page from markdown content.
type CreatePageHandler struct {
	pages notegraph.PageService
}

// NewCreatePageHandler creates a new CreatePageHandler.
func NewCreatePageHandler(pages notegraph.PageService) *CreatePageHandler {
	return &CreatePageHandler{pages: pages}
}

// Spec describes the tool and its input schema.
func (h *CreatePageHandler) Spec() notegraph.ToolSpec {
	return notegraph.ToolSpec{
		Name: "create_page",
		Description: `Create a new page with properly structured blocks.

Markdown content is automatically parsed into the page's block hierarchy:
- Headings (# ## ###) create nested sections
- Lists (- or 1.) become proper block trees
- Code blocks are preserved as single blocks
- YAML frontmatter (---) becomes page properties`,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "Title of the new page",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "Markdown content to parse into blocks (optional)",
				},
				"properties": map[string]any{
					"type":                 "object",
					"description":          "Page properties (merged with frontmatter if both provided)",
					"additionalProperties": true,
				},
			},
			"required": []string{"title"},
		},
	}
}

// Run executes the tool with the given arguments.
func (h *CreatePageHandler) Run(ctx context.Context, args map[string]any) (string, error) {
	title, err := requireString(args, "title")
	if err != nil {
		return "", err
	}
	content := optString(args, "content", "")
	explicit := optObject(args, "properties")

	doc := markdown.Parse(content)
	properties := notegraph.MergeProperties(doc.Properties, explicit)
	blocks := doc.Batch()

	if _, err := h.pages.CreatePage(ctx, title, blocks, properties); err != nil {
		return "", err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Created page %q", title)
	if len(blocks) > 0 {
		fmt.Fprintf(&msg, "\n  - %d top-level block(s) created", len(blocks))
	}
	if len(properties) > 0 {
		fmt.Fprintf(&msg, "\n  - %d page properties set", len(properties))
	}
	return msg.String(), nil
}
