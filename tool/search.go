package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/notegraph/notegraph"
)

var _ notegraph.ToolHandler = (*SearchHandler)(nil)

// DefaultSearchLimit caps search results when no limit is given.
const DefaultSearchLimit = 20

// SearchHandler searches across pages, blocks, and files.
type SearchHandler struct {
	pages notegraph.PageService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(pages notegraph.PageService) *SearchHandler {
	return &SearchHandler{pages: pages}
}

// Spec describes the tool and its input schema.
func (h *SearchHandler) Spec() notegraph.ToolSpec {
	return notegraph.ToolSpec{
		Name:        "search",
		Description: "Search for content across pages, blocks, and files",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query text",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results to return",
					"default":     DefaultSearchLimit,
				},
				"include_blocks": map[string]any{
					"type":        "boolean",
					"description": "Include block content results",
					"default":     true,
				},
				"include_pages": map[string]any{
					"type":        "boolean",
					"description": "Include page name results",
					"default":     true,
				},
				"include_files": map[string]any{
					"type":        "boolean",
					"description": "Include file name results",
					"default":     false,
				},
			},
			"required": []string{"query"},
		},
	}
}

// Run executes the tool with the given arguments.
func (h *SearchHandler) Run(ctx context.Context, args map[string]any) (string, error) {
	query, err := requireString(args, "query")
	if err != nil {
		return "", err
	}
	limit := optInt(args, "limit", DefaultSearchLimit)
	includeBlocks := optBool(args, "include_blocks", true)
	includePages := optBool(args, "include_pages", true)
	includeFiles := optBool(args, "include_files", false)

	result, err := h.pages.Search(ctx, query, notegraph.SearchOptions{Limit: limit})
	if err != nil {
		return "", err
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("# Search Results for %q\n", query))

	if includeBlocks && len(result.Blocks) > 0 {
		parts = append(parts, fmt.Sprintf("## Content Blocks (%d found)", len(result.Blocks)))
		for i, block := range capBlocks(result.Blocks, limit) {
			content := strings.TrimSpace(block.Content)
			if content == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf("%d. %s", i+1, truncate(content, 150)))
		}
		parts = append(parts, "")
	}

	if includeBlocks && len(result.PageContents) > 0 {
		parts = append(parts, fmt.Sprintf("## Page Snippets (%d found)", len(result.PageContents)))
		for i, snippet := range capSnippets(result.PageContents, limit) {
			text := cleanSnippet(snippet.Snippet)
			if text == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf("%d. %s", i+1, truncate(text, 200)))
		}
		parts = append(parts, "")
	}

	if includePages && len(result.Pages) > 0 {
		parts = append(parts, fmt.Sprintf("## Matching Pages (%d found)", len(result.Pages)))
		for _, page := range result.Pages {
			parts = append(parts, "- "+page)
		}
		parts = append(parts, "")
	}

	if includeFiles && len(result.Files) > 0 {
		parts = append(parts, fmt.Sprintf("## Matching Files (%d found)", len(result.Files)))
		for _, file := range result.Files {
			parts = append(parts, "- "+file)
		}
		parts = append(parts, "")
	}

	if result.HasMore {
		parts = append(parts, "More results available. Increase limit to see more.")
	}

	total := len(result.Blocks) + len(result.Pages) + len(result.Files)
	parts = append(parts, fmt.Sprintf("\nTotal results found: %d", total))

	return strings.Join(parts, "\n"), nil
}

func capBlocks(blocks []notegraph.SearchBlock, limit int) []notegraph.SearchBlock {
	if limit > 0 && len(blocks) > limit {
		return blocks[:limit]
	}
	return blocks
}

func capSnippets(snippets []notegraph.SearchSnippet, limit int) []notegraph.SearchSnippet {
	if limit > 0 && len(snippets) > limit {
		return snippets[:limit]
	}
	return snippets
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// cleanSnippet strips the full-text-search highlight markers the graph
// embeds in snippet text.
func cleanSnippet(s string) string {
	s = strings.ReplaceAll(s, "$pfts_2lqh>$", "")
	s = strings.ReplaceAll(s, "$<pfts_2lqh$", "")
	return strings.TrimSpace(s)
}
