package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/notegraph/notegraph"
	main "github.com/notegraph/notegraph/cmd/notegraph"
	"github.com/notegraph/notegraph/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints block and page hits", func(t *testing.T) {
		t.Parallel()

		var gotLimit int
		pages := &mock.PageService{
			SearchFn: func(_ context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error) {
				gotLimit = opts.Limit
				assert.Equal(t, "meeting", query)
				return &notegraph.SearchResult{
					Blocks: []notegraph.SearchBlock{
						{Content: "meeting notes from Monday\nwith a second line"},
					},
					Pages: []string{"Meetings", "Weekly Sync"},
					Files: []string{"meetings.md"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.SearchCmd{Query: "meeting", Limit: 5}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, 5, gotLimit)
		output := stdout.String()
		assert.Contains(t, output, "Blocks (1):")
		assert.Contains(t, output, "meeting notes from Monday")
		assert.NotContains(t, output, "second line")
		assert.Contains(t, output, "Pages (2):")
		assert.Contains(t, output, "Weekly Sync")
		// File hits are opt-in.
		assert.NotContains(t, output, "meetings.md")
	})

	t.Run("includes file hits when requested", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			SearchFn: func(_ context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error) {
				return &notegraph.SearchResult{Files: []string{"meetings.md"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.SearchCmd{Query: "meeting", Limit: 20, Files: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Files (1):")
		assert.Contains(t, stdout.String(), "meetings.md")
	})

	t.Run("hints at more results", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			SearchFn: func(_ context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error) {
				return &notegraph.SearchResult{
					Pages:   []string{"Meetings"},
					HasMore: true,
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.SearchCmd{Query: "meeting", Limit: 1}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "More results available")
	})

	t.Run("reports when nothing matches", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			SearchFn: func(_ context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error) {
				return &notegraph.SearchResult{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.SearchCmd{Query: "nothing", Limit: 20}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "No results for \"nothing\"\n", stdout.String())
	})

	t.Run("reports service errors on stderr", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			SearchFn: func(_ context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error) {
				return nil, notegraph.Errorf(notegraph.EINVALID, "Search query is required.")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Pages: pages}

		cmd := &main.SearchCmd{Query: "", Limit: 20}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Search query is required.")
	})
}
