// Package sqlite contains the SQLite implementation of the snapshot store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/opsdeck/internal/core/snapshot"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// SnapshotStore implements secondary.SnapshotStore over a single-slot
// state table. Save overwrites the one row in a single statement, so a
// snapshot on disk is always complete - there is no partial write.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore creates a new SQLite snapshot store.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load reads the persisted document, or nil if the slot is empty.
// A slot written by a different schema version is rejected.
func (s *SnapshotStore) Load(ctx context.Context) (*secondary.SnapshotDoc, error) {
	var (
		version int
		raw     string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT schema_version, doc FROM state WHERE slot = 1",
	).Scan(&version, &raw)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if version != snapshot.SchemaVersion {
		return nil, fmt.Errorf("%w: store is v%d, this build reads v%d",
			snapshot.ErrSchemaMismatch, version, snapshot.SchemaVersion)
	}

	var doc secondary.SnapshotDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", snapshot.ErrSchemaMismatch, err)
	}

	return &doc, nil
}

// Save overwrites the slot with the given document.
func (s *SnapshotStore) Save(ctx context.Context, doc *secondary.SnapshotDoc) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state (slot, schema_version, doc, saved_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET
			schema_version = excluded.schema_version,
			doc = excluded.doc,
			saved_at = CURRENT_TIMESTAMP`,
		doc.SchemaVersion, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Ensure SnapshotStore implements the interface
var _ secondary.SnapshotStore = (*SnapshotStore)(nil)
