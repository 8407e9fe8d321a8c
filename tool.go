package notegraph

import "context"

// ToolSpec describes a named operation to a calling agent. InputSchema is
// a JSON Schema object describing the accepted arguments.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ToolHandler is one named operation exposed to calling agents. Handlers
// validate their own arguments and return a human-readable text result.
type ToolHandler interface {
	// Spec describes the tool and its input schema.
	Spec() ToolSpec

	// Run executes the tool with the given arguments.
	// Returns EINVALID for missing or malformed arguments.
	Run(ctx context.Context, args map[string]any) (string, error)
}
