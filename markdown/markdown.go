// Package markdown converts free-form markdown text into the ordered,
// nested block tree used by the note graph's outline model. The parser is
// line oriented: frontmatter is split off first, then a single forward
// pass classifies each line and routes it into the tree under the
// innermost open heading.
//
// Parsing is total: every line is classified as exactly one case, with
// paragraph as the default, so any input yields a complete document.
package markdown

import (
	"strings"

	"github.com/notegraph/notegraph"
)

// Parse converts a markdown document, with optional frontmatter, into a
// parsed document. Parsing never fails: malformed frontmatter degrades to
// empty properties with the body preserved intact (use ParseFrontmatter
// directly to observe the rejection reason).
func Parse(content string) *notegraph.ParsedDoc {
	doc := &notegraph.ParsedDoc{Properties: map[string]any{}}
	if strings.TrimSpace(content) == "" {
		return doc
	}

	props, body, _ := ParseFrontmatter(content)
	doc.Properties = props
	doc.Blocks = ParseBlocks(body)
	return doc
}

// ParseBlocks converts markdown content (without frontmatter) into a
// forest of root-level blocks.
func ParseBlocks(content string) []*notegraph.Block {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	b := &builder{}
	b.parse(strings.Split(strings.TrimRight(content, "\n"), "\n"))
	return b.roots
}
