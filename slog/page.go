// Package slog provides logging decorators for notegraph services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/notegraph/notegraph"
)

// Ensure LoggingPageService implements notegraph.PageService.
var _ notegraph.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with operation logging.
type LoggingPageService struct {
	next   notegraph.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next notegraph.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// CreatePage delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) CreatePage(ctx context.Context, title string, blocks []*notegraph.BatchBlock, properties map[string]any) (page *notegraph.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("create page",
			"page", title,
			"blocks", len(blocks),
			"properties", len(properties),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreatePage(ctx, title, blocks, properties)
}

// UpdatePage delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) UpdatePage(ctx context.Context, name string, blocks []*notegraph.BatchBlock, properties map[string]any, mode notegraph.UpdateMode) (result *notegraph.UpdateResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update page",
			"page", name,
			"mode", string(mode),
			"blocks", len(blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdatePage(ctx, name, blocks, properties, mode)
}

// ListPages delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) ListPages(ctx context.Context) (pages []*notegraph.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list pages",
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListPages(ctx)
}

// GetPage delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) GetPage(ctx context.Context, name string) (content *notegraph.PageContent, err error) {
	defer func(begin time.Time) {
		blocks := 0
		if content != nil {
			blocks = len(content.Blocks)
		}
		s.logger.Info("get page",
			"page", name,
			"blocks", blocks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetPage(ctx, name)
}

// DeletePage delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) DeletePage(ctx context.Context, name string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete page",
			"page", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeletePage(ctx, name)
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) Search(ctx context.Context, query string, opts notegraph.SearchOptions) (result *notegraph.SearchResult, err error) {
	defer func(begin time.Time) {
		hits := 0
		if result != nil {
			hits = len(result.Blocks)
		}
		s.logger.Info("search",
			"query", query,
			"blocks", hits,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, opts)
}
