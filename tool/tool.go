// Package tool implements the named operations exposed to calling
// agents: page creation, updates, retrieval, listing, deletion, and
// search. Each handler validates its own arguments, delegates to a
// notegraph.PageService, and renders a human-readable text result.
package tool

import (
	"github.com/notegraph/notegraph"
)

// Handlers returns all tool handlers backed by the given page service.
func Handlers(pages notegraph.PageService) []notegraph.ToolHandler {
	return []notegraph.ToolHandler{
		NewCreatePageHandler(pages),
		NewUpdatePageHandler(pages),
		NewListPagesHandler(pages),
		NewGetPageContentHandler(pages),
		NewDeletePageHandler(pages),
		NewSearchHandler(pages),
	}
}

// requireString extracts a required string argument.
func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", notegraph.Errorf(notegraph.EINVALID, "%s argument required", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", notegraph.Errorf(notegraph.EINVALID, "%s argument must be a non-empty string", key)
	}
	return s, nil
}

// optString extracts an optional string argument, returning def when
// absent.
func optString(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return def
}

// optInt extracts an optional integer argument, returning def when
// absent. JSON numbers decode as float64, so both are accepted.
func optInt(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// optBool extracts an optional boolean argument, returning def when
// absent.
func optBool(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

// optObject extracts an optional object argument.
func optObject(args map[string]any, key string) map[string]any {
	if v, ok := args[key].(map[string]any); ok {
		return v
	}
	return nil
}
