package markdown

import (
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/notegraph/notegraph"
)

// yamlFormat recognizes only ---/--- YAML frontmatter. TOML and JSON
// headers are deliberately not recognized; anything else at the top of a
// document is body content.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// ParseFrontmatter extracts the leading frontmatter block from content and
// returns the resulting properties together with the remaining body.
//
// Only a delimiter pair anchored at the very start of the document is
// treated as frontmatter; later triple-dash lines are ordinary body
// content. If the frontmatter is malformed or not a mapping, the
// properties are empty, the body is the entire original text (delimiters
// included), and the returned error describes the rejection. That error is
// diagnostic only: the body return is always safe to use.
//
// Date and time values are converted to ISO-8601 strings so downstream
// JSON serialization never sees a non-text date.
func ParseFrontmatter(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, "---") {
		return map[string]any{}, content, nil
	}

	var props map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(content), &props, yamlFormat)
	if err != nil {
		return map[string]any{}, content, notegraph.Errorf(notegraph.EINVALID, "malformed frontmatter: %v", err)
	}
	if props == nil {
		return map[string]any{}, string(rest), nil
	}

	normalized, _ := normalizeValue(props).(map[string]any)
	return normalized, string(rest), nil
}

// normalizeValue recursively converts time values produced by the YAML
// decoder into ISO-8601 strings.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case time.Time:
		return val.Format(time.RFC3339)
	}
	return v
}
