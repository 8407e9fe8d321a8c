package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/notegraph/notegraph"
	main "github.com/notegraph/notegraph/cmd/notegraph"
	"github.com/notegraph/notegraph/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("appends blocks and reports the result", func(t *testing.T) {
		t.Parallel()

		var gotMode notegraph.UpdateMode
		pages := &mock.PageService{
			UpdatePageFn: func(_ context.Context, name string, blocks []*notegraph.BatchBlock, properties map[string]any, mode notegraph.UpdateMode) (*notegraph.UpdateResult, error) {
				gotMode = mode
				assert.Equal(t, "Roadmap", name)
				return &notegraph.UpdateResult{Page: name, Mode: mode, BlocksAdded: len(blocks)}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader("- new item\n- another\n"),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Pages:  pages,
		}

		cmd := &main.UpdateCmd{Name: "Roadmap", Mode: "append"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, notegraph.UpdateAppend, gotMode)
		assert.Contains(t, stdout.String(), `Updated page "Roadmap" (mode: append)`)
		assert.Contains(t, stdout.String(), "Added 2 block(s)")
		assert.NotContains(t, stdout.String(), "cleared")
	})

	t.Run("replace mode reports cleared content", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			UpdatePageFn: func(_ context.Context, name string, blocks []*notegraph.BatchBlock, properties map[string]any, mode notegraph.UpdateMode) (*notegraph.UpdateResult, error) {
				assert.Equal(t, notegraph.UpdateReplace, mode)
				return &notegraph.UpdateResult{Page: name, Mode: mode, Cleared: true, BlocksAdded: 1, PropertiesSet: 2}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader("---\nstatus: final\ntags: [work]\n---\nfresh\n"),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Pages:  pages,
		}

		cmd := &main.UpdateCmd{Name: "Roadmap", Mode: "replace"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Existing content cleared")
		assert.Contains(t, stdout.String(), "Added 1 block(s)")
		assert.Contains(t, stdout.String(), "Updated 2 properties")
	})

	t.Run("reports missing pages on stderr", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageService{
			UpdatePageFn: func(_ context.Context, name string, blocks []*notegraph.BatchBlock, properties map[string]any, mode notegraph.UpdateMode) (*notegraph.UpdateResult, error) {
				return nil, notegraph.Errorf(notegraph.ENOTFOUND, "Page %q not found.", name)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader("content\n"),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pages,
		}

		cmd := &main.UpdateCmd{Name: "Ghost", Mode: "append"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, notegraph.ENOTFOUND, notegraph.ErrorCode(err))
		assert.Contains(t, stderr.String(), `error: Page "Ghost" not found.`)
		assert.Empty(t, stdout.String())
	})
}
