package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/notegraph/notegraph"
)

// Compile-time interface verification.
var _ notegraph.SyncStateService = (*SyncStateService)(nil)

// SyncStateService implements notegraph.SyncStateService using SQLite.
type SyncStateService struct {
	db *DB
}

// NewSyncStateService creates a new SyncStateService.
func NewSyncStateService(db *DB) *SyncStateService {
	return &SyncStateService{db: db}
}

// FindEntryByPath retrieves the sync entry for a file path.
func (s *SyncStateService) FindEntryByPath(ctx context.Context, path string) (*notegraph.SyncEntry, error) {
	var entry notegraph.SyncEntry
	var syncedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, path, page, hash, synced_at
		FROM sync_entries
		WHERE path = ?
	`, path).Scan(&entry.ID, &entry.Path, &entry.Page, &entry.Hash, &syncedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, notegraph.Errorf(notegraph.ENOTFOUND, "sync entry not found")
	}
	if err != nil {
		return nil, err
	}

	entry.SyncedAt, err = time.Parse(time.RFC3339, syncedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse synced_at: %w", err)
	}

	return &entry, nil
}

// UpsertEntry creates or replaces the entry for entry.Path. A new entry
// is assigned an ID; SyncedAt is always set to the time of the write.
func (s *SyncStateService) UpsertEntry(ctx context.Context, entry *notegraph.SyncEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.SyncedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_entries (id, path, page, hash, synced_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			id = excluded.id,
			page = excluded.page,
			hash = excluded.hash,
			synced_at = excluded.synced_at
	`, entry.ID, entry.Path, entry.Page, entry.Hash, entry.SyncedAt.Format(time.RFC3339))

	return err
}

// ListEntries retrieves all sync entries ordered by path.
func (s *SyncStateService) ListEntries(ctx context.Context) ([]*notegraph.SyncEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, path, page, hash, synced_at
		FROM sync_entries
		ORDER BY path
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*notegraph.SyncEntry
	for rows.Next() {
		var entry notegraph.SyncEntry
		var syncedAt string

		if err := rows.Scan(&entry.ID, &entry.Path, &entry.Page, &entry.Hash, &syncedAt); err != nil {
			return nil, err
		}

		entry.SyncedAt, err = time.Parse(time.RFC3339, syncedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse synced_at: %w", err)
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// DeleteEntry removes the entry for a file path.
func (s *SyncStateService) DeleteEntry(ctx context.Context, path string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sync_entries WHERE path = ?", path)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notegraph.Errorf(notegraph.ENOTFOUND, "sync entry not found")
	}

	return nil
}
