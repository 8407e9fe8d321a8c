// Package mock provides function-field mock implementations of the
// notegraph service interfaces for use in tests.
package mock

import (
	"context"

	"github.com/notegraph/notegraph"
)

var _ notegraph.PageService = (*PageService)(nil)

// PageService is a mock implementation of notegraph.PageService.
type PageService struct {
	CreatePageFn func(ctx context.Context, title string, blocks []*notegraph.BatchBlock, properties map[string]any) (*notegraph.Page, error)
	UpdatePageFn func(ctx context.Context, name string, blocks []*notegraph.BatchBlock, properties map[string]any, mode notegraph.UpdateMode) (*notegraph.UpdateResult, error)
	ListPagesFn  func(ctx context.Context) ([]*notegraph.Page, error)
	GetPageFn    func(ctx context.Context, name string) (*notegraph.PageContent, error)
	DeletePageFn func(ctx context.Context, name string) error
	SearchFn     func(ctx context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error)
}

func (s *PageService) CreatePage(ctx context.Context, title string, blocks []*notegraph.BatchBlock, properties map[string]any) (*notegraph.Page, error) {
	return s.CreatePageFn(ctx, title, blocks, properties)
}

func (s *PageService) UpdatePage(ctx context.Context, name string, blocks []*notegraph.BatchBlock, properties map[string]any, mode notegraph.UpdateMode) (*notegraph.UpdateResult, error) {
	return s.UpdatePageFn(ctx, name, blocks, properties, mode)
}

func (s *PageService) ListPages(ctx context.Context) ([]*notegraph.Page, error) {
	return s.ListPagesFn(ctx)
}

func (s *PageService) GetPage(ctx context.Context, name string) (*notegraph.PageContent, error) {
	return s.GetPageFn(ctx, name)
}

func (s *PageService) DeletePage(ctx context.Context, name string) error {
	return s.DeletePageFn(ctx, name)
}

func (s *PageService) Search(ctx context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}
