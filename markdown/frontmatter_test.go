package markdown_test

import (
	"testing"

	"github.com/notegraph/notegraph/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("valid yaml frontmatter", func(t *testing.T) {
		t.Parallel()

		content := "---\ntitle: Test Page\ntags: [a, b]\n---\n\nBody text.\n"

		props, body, err := markdown.ParseFrontmatter(content)

		require.NoError(t, err)
		assert.Equal(t, "Test Page", props["title"])
		assert.Equal(t, []any{"a", "b"}, props["tags"])
		assert.Contains(t, body, "Body text.")
		assert.NotContains(t, body, "title:")
	})

	t.Run("no frontmatter", func(t *testing.T) {
		t.Parallel()

		content := "Just some text.\n"

		props, body, err := markdown.ParseFrontmatter(content)

		require.NoError(t, err)
		assert.Empty(t, props)
		assert.Equal(t, content, body)
	})

	t.Run("empty frontmatter block", func(t *testing.T) {
		t.Parallel()

		props, body, err := markdown.ParseFrontmatter("---\n---\nBody\n")

		require.NoError(t, err)
		assert.Empty(t, props)
		assert.Contains(t, body, "Body")
		assert.NotContains(t, body, "---")
	})

	t.Run("nested mappings", func(t *testing.T) {
		t.Parallel()

		content := "---\nmeta:\n  author: someone\n  stats:\n    words: 120\n---\nBody\n"

		props, _, err := markdown.ParseFrontmatter(content)

		require.NoError(t, err)
		meta, ok := props["meta"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "someone", meta["author"])
		stats, ok := meta["stats"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 120, stats["words"])
	})

	t.Run("dates become ISO-8601 strings", func(t *testing.T) {
		t.Parallel()

		content := "---\ncreated: 2026-01-15\nupdated: 2026-01-06T10:30:00Z\n---\nBody\n"

		props, _, err := markdown.ParseFrontmatter(content)

		require.NoError(t, err)
		assert.Equal(t, "2026-01-15T00:00:00Z", props["created"])
		assert.Equal(t, "2026-01-06T10:30:00Z", props["updated"])
	})

	t.Run("dates inside lists and mappings", func(t *testing.T) {
		t.Parallel()

		content := "---\ndates:\n  - 2026-01-15\nmeta:\n  due: 2026-02-01\n---\nBody\n"

		props, _, err := markdown.ParseFrontmatter(content)

		require.NoError(t, err)
		dates, ok := props["dates"].([]any)
		require.True(t, ok)
		assert.Equal(t, "2026-01-15T00:00:00Z", dates[0])
		meta, ok := props["meta"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "2026-02-01T00:00:00Z", meta["due"])
	})

	t.Run("malformed yaml preserves original text", func(t *testing.T) {
		t.Parallel()

		content := "---\nthis is: not: valid: yaml\n  - broken indentation\n---\n\nContent here.\n"

		props, body, err := markdown.ParseFrontmatter(content)

		assert.Error(t, err)
		assert.Empty(t, props)
		assert.Equal(t, content, body)
	})

	t.Run("non-mapping frontmatter preserves original text", func(t *testing.T) {
		t.Parallel()

		content := "---\n- just\n- a list\n---\nBody\n"

		props, body, err := markdown.ParseFrontmatter(content)

		assert.Error(t, err)
		assert.Empty(t, props)
		assert.Equal(t, content, body)
	})

	t.Run("unterminated frontmatter is body content", func(t *testing.T) {
		t.Parallel()

		// Without a closing delimiter there is no frontmatter block at
		// all, so the whole input is body and no diagnostic is raised.
		content := "---\nkey: value\nno closing delimiter\n"

		props, body, err := markdown.ParseFrontmatter(content)

		require.NoError(t, err)
		assert.Empty(t, props)
		assert.Equal(t, content, body)
	})

	t.Run("only the leading delimiter pair is frontmatter", func(t *testing.T) {
		t.Parallel()

		content := "---\nkey: value\n---\n\nSome content\n\n---\n\nThis should remain as content.\n"

		props, body, err := markdown.ParseFrontmatter(content)

		require.NoError(t, err)
		assert.Equal(t, "value", props["key"])
		assert.Contains(t, body, "---")
		assert.Contains(t, body, "This should remain as content.")
	})

	t.Run("horizontal rule at start is not frontmatter", func(t *testing.T) {
		t.Parallel()

		content := "--- with trailing text\nBody\n"

		props, body, err := markdown.ParseFrontmatter(content)

		require.NoError(t, err)
		assert.Empty(t, props)
		assert.Equal(t, content, body)
	})
}
