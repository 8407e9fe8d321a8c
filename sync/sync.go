// Package sync pushes a directory of markdown files into the note
// graph. Files are fingerprinted so unchanged ones are skipped, and
// entries for deleted files are pruned from the local state. Remote
// pages are never deleted by a sync.
package sync

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	stdsync "sync"
	"time"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/markdown"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is how many files are pushed concurrently.
const DefaultWorkers = 4

// Syncer pushes markdown files to the graph through a PageService,
// tracking what was pushed in a SyncStateService.
type Syncer struct {
	pages   notegraph.PageService
	state   notegraph.SyncStateService
	logger  *slog.Logger
	workers int
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithWorkers sets the number of concurrent file pushes.
// Defaults to DefaultWorkers if not specified.
func WithWorkers(n int) Option {
	return func(s *Syncer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewSyncer creates a new Syncer.
func NewSyncer(pages notegraph.PageService, state notegraph.SyncStateService, logger *slog.Logger, opts ...Option) *Syncer {
	s := &Syncer{
		pages:   pages,
		state:   state,
		logger:  logger,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result summarizes one sync run.
type Result struct {
	Created int
	Updated int
	Skipped int
	Pruned  int

	// Failed maps relative file paths to the error that stopped them.
	// Failures don't abort the run; the remaining files still sync.
	Failed map[string]error

	Duration time.Duration
}

// Sync pushes every markdown file under dir to the graph. New files
// create pages named after the file, changed files replace their page's
// content, and unchanged files (by content hash) are skipped. State
// entries whose files no longer exist are pruned.
func (s *Syncer) Sync(ctx context.Context, dir string) (*Result, error) {
	begin := time.Now()

	files, err := ScanDirectory(dir, ".md")
	if err != nil {
		return nil, err
	}

	result := &Result{Failed: map[string]error{}}
	var mu stdsync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, rel := range files {
		g.Go(func() error {
			outcome, err := s.syncFile(gctx, dir, rel)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				result.Failed[rel] = err
				s.logger.Error("sync file failed", "path", rel, "err", err)
			case outcome == outcomeCreated:
				result.Created++
			case outcome == outcomeUpdated:
				result.Updated++
			default:
				result.Skipped++
			}
			return nil
		})
	}
	// Workers never return errors (failures land in result.Failed), so
	// Wait only propagates a programming mistake.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pruned, err := s.prune(ctx, files)
	if err != nil {
		return nil, err
	}
	result.Pruned = pruned

	result.Duration = time.Since(begin)
	s.logger.Info("sync complete",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"pruned", result.Pruned,
		"failed", len(result.Failed),
		"duration", result.Duration,
	)
	return result, nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeCreated
	outcomeUpdated
)

func (s *Syncer) syncFile(ctx context.Context, dir, rel string) (outcome, error) {
	raw, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		return outcomeSkipped, err
	}
	content := string(raw)
	hash := notegraph.ContentHash(content)

	entry, err := s.state.FindEntryByPath(ctx, rel)
	if err != nil && notegraph.ErrorCode(err) != notegraph.ENOTFOUND {
		return outcomeSkipped, err
	}
	if entry != nil && entry.Hash == hash {
		return outcomeSkipped, nil
	}

	doc := markdown.Parse(content)
	blocks := doc.Batch()

	var page string
	var out outcome
	if entry == nil {
		page = PageName(rel)
		if _, err := s.pages.CreatePage(ctx, page, blocks, doc.Properties); err != nil {
			return outcomeSkipped, err
		}
		out = outcomeCreated
	} else {
		page = entry.Page
		if _, err := s.pages.UpdatePage(ctx, page, blocks, doc.Properties, notegraph.UpdateReplace); err != nil {
			return outcomeSkipped, err
		}
		out = outcomeUpdated
	}

	err = s.state.UpsertEntry(ctx, &notegraph.SyncEntry{
		Path: rel,
		Page: page,
		Hash: hash,
	})
	if err != nil {
		return outcomeSkipped, err
	}
	return out, nil
}

// prune removes state entries whose files no longer exist on disk.
func (s *Syncer) prune(ctx context.Context, files []string) (int, error) {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}

	entries, err := s.state.ListEntries(ctx)
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, entry := range entries {
		if present[entry.Path] {
			continue
		}
		if err := s.state.DeleteEntry(ctx, entry.Path); err != nil {
			return pruned, err
		}
		s.logger.Info("pruned sync entry", "path", entry.Path, "page", entry.Page)
		pruned++
	}
	return pruned, nil
}

// ScanDirectory returns the relative paths of all files under dir with
// the given extension, sorted. Hidden directories are skipped.
func ScanDirectory(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ext {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// PageName derives a page name from a file path: the base name without
// its extension.
func PageName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
