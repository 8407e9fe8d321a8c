package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/notegraph/notegraph"
	main "github.com/notegraph/notegraph/cmd/notegraph"
	"github.com/notegraph/notegraph/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emptyState() *mock.SyncStateService {
	return &mock.SyncStateService{
		FindEntryByPathFn: func(_ context.Context, path string) (*notegraph.SyncEntry, error) {
			return nil, notegraph.Errorf(notegraph.ENOTFOUND, "no sync entry for %q", path)
		},
		UpsertEntryFn: func(_ context.Context, entry *notegraph.SyncEntry) error {
			return nil
		},
		ListEntriesFn: func(_ context.Context) ([]*notegraph.SyncEntry, error) {
			return nil, nil
		},
	}
}

func TestSyncCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("pushes new files and summarizes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Inbox.md"), []byte("- task\n"), 0o644))

		var created []string
		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, title string, blocks []*notegraph.BatchBlock, properties map[string]any) (*notegraph.Page, error) {
				created = append(created, title)
				return &notegraph.Page{Name: title}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Logger: discardLogger(),
			Pages:  pages,
			State:  emptyState(),
		}

		cmd := &main.SyncCmd{Dir: dir, Workers: 1}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"Inbox"}, created)
		assert.Contains(t, stdout.String(), "Sync complete: 1 created, 0 updated, 0 skipped, 0 pruned")
	})

	t.Run("reports failed files and returns an error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Bad.md"), []byte("- task\n"), 0o644))

		pages := &mock.PageService{
			CreatePageFn: func(_ context.Context, title string, blocks []*notegraph.BatchBlock, properties map[string]any) (*notegraph.Page, error) {
				return nil, notegraph.Errorf(notegraph.EUNAVAILABLE, "Logseq API unreachable")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Logger: discardLogger(),
			Pages:  pages,
			State:  emptyState(),
		}

		cmd := &main.SyncCmd{Dir: dir, Workers: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, notegraph.EINTERNAL, notegraph.ErrorCode(err))
		assert.Contains(t, stderr.String(), "1 file(s) failed:")
		assert.Contains(t, stderr.String(), "Bad.md")
		assert.Contains(t, stdout.String(), "0 created")
	})

	t.Run("fails for a missing directory", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Logger: discardLogger(),
			Pages:  &mock.PageService{},
			State:  emptyState(),
		}

		cmd := &main.SyncCmd{Dir: filepath.Join(t.TempDir(), "absent"), Workers: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
