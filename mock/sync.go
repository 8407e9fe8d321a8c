package mock

import (
	"context"

	"github.com/notegraph/notegraph"
)

var _ notegraph.SyncStateService = (*SyncStateService)(nil)

// SyncStateService is a mock implementation of notegraph.SyncStateService.
type SyncStateService struct {
	FindEntryByPathFn func(ctx context.Context, path string) (*notegraph.SyncEntry, error)
	UpsertEntryFn     func(ctx context.Context, entry *notegraph.SyncEntry) error
	ListEntriesFn     func(ctx context.Context) ([]*notegraph.SyncEntry, error)
	DeleteEntryFn     func(ctx context.Context, path string) error
}

func (s *SyncStateService) FindEntryByPath(ctx context.Context, path string) (*notegraph.SyncEntry, error) {
	return s.FindEntryByPathFn(ctx, path)
}

func (s *SyncStateService) UpsertEntry(ctx context.Context, entry *notegraph.SyncEntry) error {
	return s.UpsertEntryFn(ctx, entry)
}

func (s *SyncStateService) ListEntries(ctx context.Context) ([]*notegraph.SyncEntry, error) {
	return s.ListEntriesFn(ctx)
}

func (s *SyncStateService) DeleteEntry(ctx context.Context, path string) error {
	return s.DeleteEntryFn(ctx, path)
}
