package markdown

import "strings"

// Line classification. Each predicate is an anchored character test; the
// builder applies them to every line in a fixed priority order so that
// overlapping patterns resolve deterministically:
//
//  1. fenced-code delimiter
//  2. heading
//  3. horizontal rule
//  4. blockquote
//  5. checkbox item
//  6. bullet item
//  7. numbered item
//  8. capitalized status marker
//  9. paragraph (default)

// indentCutset is the leading whitespace stripped before matching
// line-start patterns.
const indentCutset = " \t"

// isBlank reports whether the line contains only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// indentDepth returns the indentation depth of a line. Every two leading
// spaces make one level, a tab counts as two spaces, and partial levels
// round down (a 3-space indent is depth 1).
func indentDepth(line string) int {
	spaces := 0
	for _, r := range line {
		switch r {
		case ' ':
			spaces++
		case '\t':
			spaces += 2
		default:
			return spaces / 2
		}
	}
	return spaces / 2
}

// isFenceStart reports whether the line opens a fenced code block: leading
// whitespace, three backticks, and an optional language tag.
func isFenceStart(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, indentCutset), "```")
}

// isFenceEnd reports whether the line closes a fenced code block: three
// backticks with nothing but whitespace after them.
func isFenceEnd(line string) bool {
	rest := strings.TrimLeft(line, indentCutset)
	if !strings.HasPrefix(rest, "```") {
		return false
	}
	return strings.TrimSpace(rest[3:]) == ""
}

// headingLevel returns the heading depth (1-6) of a line, or 0 if the line
// is not a heading. Headings are anchored at column zero: 1-6 hash
// characters, required whitespace, then text.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return 0
	}
	if level >= len(line) || (line[level] != ' ' && line[level] != '\t') {
		return 0
	}
	if strings.TrimSpace(line[level:]) == "" {
		return 0
	}
	return level
}

// isHorizontalRule reports whether the line is a horizontal rule: ignoring
// surrounding whitespace, three or more characters drawn from -, *, _ and
// nothing else.
func isHorizontalRule(line string) bool {
	s := strings.TrimSpace(line)
	if len(s) < 3 {
		return false
	}
	for _, r := range s {
		switch r {
		case '-', '*', '_':
		default:
			return false
		}
	}
	return true
}

// isBlockquote reports whether the line's first non-whitespace character
// is a > quote marker.
func isBlockquote(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, indentCutset), ">")
}

// matchCheckbox matches a checkbox list item: bullet marker, whitespace,
// [ ] or [x] or [X], required whitespace, then text (possibly empty).
func matchCheckbox(line string) (checked bool, text string, ok bool) {
	rest := strings.TrimLeft(line, indentCutset)
	if rest == "" {
		return false, "", false
	}
	switch rest[0] {
	case '-', '*', '+':
	default:
		return false, "", false
	}

	rest, n := cutIndent(rest[1:])
	if n == 0 {
		return false, "", false
	}
	if len(rest) < 3 || rest[0] != '[' || rest[2] != ']' {
		return false, "", false
	}
	mark := rest[1]
	if mark != ' ' && mark != 'x' && mark != 'X' {
		return false, "", false
	}

	rest, n = cutIndent(rest[3:])
	if n == 0 {
		return false, "", false
	}
	return mark != ' ', rest, true
}

// matchBullet matches a bullet list item: -, * or +, required whitespace,
// then text (possibly empty).
func matchBullet(line string) (text string, ok bool) {
	rest := strings.TrimLeft(line, indentCutset)
	if rest == "" {
		return "", false
	}
	switch rest[0] {
	case '-', '*', '+':
	default:
		return "", false
	}

	text, n := cutIndent(rest[1:])
	if n == 0 {
		return "", false
	}
	return text, true
}

// matchNumbered matches a numbered list item: digits, a dot, required
// whitespace, then text (possibly empty).
func matchNumbered(line string) (text string, ok bool) {
	rest := strings.TrimLeft(line, indentCutset)
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits >= len(rest) || rest[digits] != '.' {
		return "", false
	}

	text, n := cutIndent(rest[digits+1:])
	if n == 0 {
		return "", false
	}
	return text, true
}

// matchMarker matches a capitalized status marker such as TODO, DOING, or
// IN-PROGRESS: an uppercase letter followed by at least two more
// characters from [A-Z0-9_-], required whitespace, then non-empty text.
// Two-character tokens are deliberately excluded so abbreviations like
// region codes fall through to paragraph handling.
func matchMarker(line string) (marker, text string, ok bool) {
	rest := strings.TrimLeft(line, indentCutset)
	if rest == "" || rest[0] < 'A' || rest[0] > 'Z' {
		return "", "", false
	}

	end := 1
	for end < len(rest) && isMarkerChar(rest[end]) {
		end++
	}
	if end < 3 || end >= len(rest) {
		return "", "", false
	}

	text, n := cutIndent(rest[end:])
	if n == 0 || text == "" {
		return "", "", false
	}
	return rest[:end], text, true
}

func isMarkerChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

// isListLike reports whether the line matches any list-like pattern:
// checkbox, bullet, numbered item, or capitalized marker.
func isListLike(line string) bool {
	if _, _, ok := matchCheckbox(line); ok {
		return true
	}
	if _, ok := matchBullet(line); ok {
		return true
	}
	if _, ok := matchNumbered(line); ok {
		return true
	}
	_, _, ok := matchMarker(line)
	return ok
}

// listItemContent extracts the display content and indentation depth of a
// list-like line. Bullet and number markers are discarded because the
// target outline already renders blocks as bullets; checkboxes are
// rewritten to a TODO/DONE status token; capitalized markers are kept
// verbatim.
func listItemContent(line string) (string, int) {
	depth := indentDepth(line)

	if checked, text, ok := matchCheckbox(line); ok {
		status := "TODO"
		if checked {
			status = "DONE"
		}
		text = strings.TrimSpace(text)
		// Strip a redundant TODO:/DONE: prefix left in the text.
		if rest, found := strings.CutPrefix(text, "TODO:"); found {
			text = strings.TrimSpace(rest)
		} else if rest, found := strings.CutPrefix(text, "DONE:"); found {
			text = strings.TrimSpace(rest)
		}
		return status + " " + text, depth
	}

	if text, ok := matchBullet(line); ok {
		return text, depth
	}
	if text, ok := matchNumbered(line); ok {
		return text, depth
	}
	if marker, text, ok := matchMarker(line); ok {
		return marker + " " + text, depth
	}

	return strings.TrimSpace(line), depth
}

// cutIndent removes leading whitespace and reports how many characters
// were removed, so callers can require at least one separator.
func cutIndent(s string) (string, int) {
	trimmed := strings.TrimLeft(s, indentCutset)
	return trimmed, len(s) - len(trimmed)
}
