package markdown

import (
	"strings"

	"github.com/notegraph/notegraph"
)

// builder constructs the block forest in a single forward pass. roots
// grows only; headingStack holds the currently open headings, outermost
// first, and routes non-heading blocks to the innermost open section.
type builder struct {
	roots        []*notegraph.Block
	headingStack []*notegraph.Block
}

func (b *builder) parse(lines []string) {
	i := 0
	for i < len(lines) {
		line := lines[i]

		switch {
		case isBlank(line):
			i++
		case isFenceStart(line):
			i = b.parseFencedCode(lines, i)
		case headingLevel(line) > 0:
			b.parseHeading(line, headingLevel(line))
			i++
		case isHorizontalRule(line):
			b.attach(&notegraph.Block{Content: "---"})
			i++
		case isBlockquote(line):
			i = b.parseBlockquote(lines, i)
		case isListLike(line):
			item, next := parseListItem(lines, i)
			if item.Content != "" {
				b.attach(item)
			} else {
				// An empty item is dropped; its children take its place.
				for _, child := range item.Children {
					b.attach(child)
				}
			}
			i = next
		default:
			i = b.parseParagraph(lines, i)
		}
	}
}

// parseHeading updates the heading hierarchy. Sections at the same or a
// deeper level are closed; the new heading nests under the nearest
// still-open shallower heading or becomes a root. Heading content keeps
// its # markers verbatim.
func (b *builder) parseHeading(line string, level int) {
	block := &notegraph.Block{Content: strings.TrimSpace(line), Level: level}

	for len(b.headingStack) > 0 && b.headingStack[len(b.headingStack)-1].Level >= level {
		b.headingStack = b.headingStack[:len(b.headingStack)-1]
	}

	if len(b.headingStack) > 0 {
		parent := b.headingStack[len(b.headingStack)-1]
		parent.Children = append(parent.Children, block)
	} else {
		b.roots = append(b.roots, block)
	}

	b.headingStack = append(b.headingStack, block)
}

// parseFencedCode consumes a fenced code block into a single block,
// fence lines included. An unterminated fence consumes to end of input.
// Returns the index of the line after the closing fence.
func (b *builder) parseFencedCode(lines []string, start int) int {
	code := []string{lines[start]}

	i := start + 1
	for i < len(lines) {
		code = append(code, lines[i])
		if isFenceEnd(lines[i]) {
			break
		}
		i++
	}

	b.attach(&notegraph.Block{Content: strings.Join(code, "\n")})
	return i + 1
}

// parseBlockquote consumes a contiguous run of blockquote lines into a
// single block, > prefixes preserved. A blank line or any non-blockquote
// line ends the run without being consumed.
func (b *builder) parseBlockquote(lines []string, start int) int {
	var quote []string

	i := start
	for i < len(lines) && isBlockquote(lines[i]) {
		quote = append(quote, strings.TrimRight(lines[i], " \t\r"))
		i++
	}

	b.attach(&notegraph.Block{Content: strings.Join(quote, "\n")})
	return i
}

// parseParagraph consumes consecutive plain lines into a single block,
// trimmed and joined with spaces. Hard line breaks inside a paragraph are
// not preserved.
func (b *builder) parseParagraph(lines []string, start int) int {
	var para []string

	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			break
		}
		if headingLevel(line) > 0 || isFenceStart(line) || isHorizontalRule(line) ||
			isBlockquote(line) || isListLike(line) {
			break
		}
		para = append(para, strings.TrimSpace(line))
		i++
	}

	if len(para) > 0 {
		b.attach(&notegraph.Block{Content: strings.Join(para, " ")})
	}
	return i
}

// attach routes a finished block to the innermost open heading, or to the
// roots when no heading is open.
func (b *builder) attach(block *notegraph.Block) {
	if len(b.headingStack) > 0 {
		top := b.headingStack[len(b.headingStack)-1]
		top.Children = append(top.Children, block)
		return
	}
	b.roots = append(b.roots, block)
}

// parseListItem parses one list-like line and its indentation-nested
// subtree, returning the item and the index of the next unconsumed line.
// The scan with baseline depth D ends at any line of depth <= D, and
// unconditionally at a heading, fence, horizontal rule, or blockquote.
// Deeper list-like lines recurse with their own depth as the new
// baseline; other deeper lines become plain child blocks.
func parseListItem(lines []string, start int) (*notegraph.Block, int) {
	content, depth := listItemContent(lines[start])
	item := &notegraph.Block{Content: content, Level: depth}

	i := start + 1
	for i < len(lines) {
		line := lines[i]

		// Blank lines inside a list do not end the scan.
		if isBlank(line) {
			i++
			continue
		}

		if indentDepth(line) <= depth {
			break
		}
		if headingLevel(line) > 0 || isFenceStart(line) || isHorizontalRule(line) || isBlockquote(line) {
			break
		}

		if isListLike(line) {
			child, next := parseListItem(lines, i)
			if child.Content != "" {
				item.Children = append(item.Children, child)
			} else {
				item.Children = append(item.Children, child.Children...)
			}
			i = next
			continue
		}

		item.Children = append(item.Children, &notegraph.Block{
			Content: strings.TrimSpace(line),
			Level:   indentDepth(line),
		})
		i++
	}

	return item, i
}
