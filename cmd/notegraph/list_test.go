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

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	pages := &mock.PageService{
		ListPagesFn: func(_ context.Context) ([]*notegraph.Page, error) {
			return []*notegraph.Page{
				{Name: "roadmap", OriginalName: "Roadmap"},
				{Name: "aug 29th, 2026", OriginalName: "Aug 29th, 2026", Journal: true},
				{Name: "inbox", OriginalName: "Inbox"},
			}, nil
		},
	}

	t.Run("lists regular pages sorted by name", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Inbox\nRoadmap\n\nTotal: 2\n", stdout.String())
	})

	t.Run("includes journals when requested", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: pages}

		cmd := &main.ListCmd{Journals: true}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Aug 29th, 2026 [journal]")
		assert.Contains(t, output, "Total: 3")
	})

	t.Run("shows a message when the graph is empty", func(t *testing.T) {
		t.Parallel()

		empty := &mock.PageService{
			ListPagesFn: func(_ context.Context) ([]*notegraph.Page, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pages: empty}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "No pages found.\n", stdout.String())
	})

	t.Run("reports service errors on stderr", func(t *testing.T) {
		t.Parallel()

		broken := &mock.PageService{
			ListPagesFn: func(_ context.Context) ([]*notegraph.Page, error) {
				return nil, notegraph.Errorf(notegraph.EUNAVAILABLE, "Logseq API unreachable")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Pages: broken}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Logseq API unreachable")
	})
}
