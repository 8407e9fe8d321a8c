package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/notegraph/notegraph"
	main "github.com/notegraph/notegraph/cmd/notegraph"
	"github.com/notegraph/notegraph/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	content := &notegraph.PageContent{
		Page: &notegraph.Page{Name: "roadmap", OriginalName: "Roadmap"},
		Blocks: []*notegraph.RemoteBlock{
			{
				UUID:    "b1",
				Content: "parent",
				Children: []*notegraph.RemoteBlock{
					{UUID: "b2", Content: "child"},
				},
			},
		},
	}

	pages := &mock.PageService{
		GetPageFn: func(_ context.Context, name string) (*notegraph.PageContent, error) {
			if name != "Roadmap" {
				return nil, notegraph.Errorf(notegraph.ENOTFOUND, "Page %q not found.", name)
			}
			return content, nil
		},
	}

	t.Run("prints the outline as text", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.GetCmd{Name: "Roadmap", Format: "text", MaxDepth: -1}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "- parent\n  - child\n", stdout.String())
	})

	t.Run("max depth limits nesting", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.GetCmd{Name: "Roadmap", Format: "text", MaxDepth: 0}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "- parent\n", stdout.String())
	})

	t.Run("json format emits the full structure", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.GetCmd{Name: "Roadmap", Format: "json", MaxDepth: -1}
		require.NoError(t, cmd.Run(deps))

		var decoded notegraph.PageContent
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		assert.Equal(t, "Roadmap", decoded.Page.OriginalName)
		require.Len(t, decoded.Blocks, 1)
		assert.Equal(t, "parent", decoded.Blocks[0].Content)
	})

	t.Run("prints a dash for empty pages", func(t *testing.T) {
		t.Parallel()

		empty := &mock.PageService{
			GetPageFn: func(_ context.Context, name string) (*notegraph.PageContent, error) {
				return &notegraph.PageContent{Page: &notegraph.Page{Name: name}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: empty}

		cmd := &main.GetCmd{Name: "Blank", Format: "text", MaxDepth: -1}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "-\n", stdout.String())
	})

	t.Run("reports missing pages on stderr", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Pages: pages}

		cmd := &main.GetCmd{Name: "Ghost", Format: "text", MaxDepth: -1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, notegraph.ENOTFOUND, notegraph.ErrorCode(err))
		assert.Contains(t, stderr.String(), `Page "Ghost" not found.`)
	})
}
