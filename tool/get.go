package tool

import (
	"context"
	"encoding/json"

	"github.com/notegraph/notegraph"
)

var _ notegraph.ToolHandler = (*GetPageContentHandler)(nil)

// GetPageContentHandler retrieves a page's content as an indented
// outline or as JSON.
type GetPageContentHandler struct {
	pages notegraph.PageService
}

// NewGetPageContentHandler creates a new GetPageContentHandler.
func NewGetPageContentHandler(pages notegraph.PageService) *GetPageContentHandler {
	return &GetPageContentHandler{pages: pages}
}

// Spec describes the tool and its input schema.
func (h *GetPageContentHandler) Spec() notegraph.ToolSpec {
	return notegraph.ToolSpec{
		Name:        "get_page_content",
		Description: "Get the content of a specific page.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"page_name": map[string]any{
					"type":        "string",
					"description": "Name of the page to retrieve",
				},
				"format": map[string]any{
					"type":        "string",
					"description": "Output format (text or json)",
					"enum":        []string{"text", "json"},
					"default":     "text",
				},
				"max_depth": map[string]any{
					"type":        "integer",
					"description": "Maximum nesting depth to display (default: -1 for unlimited)",
					"default":     -1,
				},
			},
			"required": []string{"page_name"},
		},
	}
}

// Run executes the tool with the given arguments.
func (h *GetPageContentHandler) Run(ctx context.Context, args map[string]any) (string, error) {
	name, err := requireString(args, "page_name")
	if err != nil {
		return "", err
	}
	format := optString(args, "format", "text")
	maxDepth := optInt(args, "max_depth", -1)

	content, err := h.pages.GetPage(ctx, name)
	if err != nil {
		return "", err
	}

	if format == "json" {
		out, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			return "", notegraph.Errorf(notegraph.EINTERNAL, "encode page content: %v", err)
		}
		return string(out), nil
	}

	text := notegraph.FormatRemoteBlocks(content.Blocks, maxDepth)
	if text == "" {
		// Empty page.
		return "-", nil
	}
	return text, nil
}
