package notegraph

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// SyncEntry records that a local markdown file was pushed to the graph as
// a page at a given content hash. It is the unit of change detection for
// directory sync.
type SyncEntry struct {
	ID       string    `json:"id"`
	Path     string    `json:"path"`
	Page     string    `json:"page"`
	Hash     string    `json:"hash"`
	SyncedAt time.Time `json:"syncedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *SyncEntry) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "sync entry path required")
	}
	if e.Page == "" {
		return Errorf(EINVALID, "sync entry page required")
	}
	return nil
}

// SyncStateService persists sync entries between runs.
type SyncStateService interface {
	// FindEntryByPath retrieves the entry for a file path.
	// Returns ENOTFOUND if no entry exists.
	FindEntryByPath(ctx context.Context, path string) (*SyncEntry, error)

	// UpsertEntry creates or replaces the entry for entry.Path.
	UpsertEntry(ctx context.Context, entry *SyncEntry) error

	// ListEntries retrieves all entries ordered by path.
	ListEntries(ctx context.Context) ([]*SyncEntry, error)

	// DeleteEntry removes the entry for a file path.
	// Returns ENOTFOUND if no entry exists.
	DeleteEntry(ctx context.Context, path string) error
}

// ContentHash returns a stable fingerprint of document content, used to
// skip unchanged files during sync.
func ContentHash(content string) string {
	return fmt.Sprintf("xxh64:%016x", xxhash.Sum64String(content))
}
