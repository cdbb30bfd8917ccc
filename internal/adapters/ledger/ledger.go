// Package ledger contains the in-memory store implementation backing
// all repository ports. The entire store is one snapshot document held
// behind a mutex; every mutation builds a new document copy, persists
// it wholesale through the SnapshotStore, then swaps it in. Readers
// always see a complete, consistent document.
package ledger

import (
	"context"
	"fmt"

	"github.com/example/opsdeck/internal/core/asset"
	"github.com/example/opsdeck/internal/core/snapshot"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// LogCap bounds the mutation log. Once reached, the oldest entry is
// evicted on append.
const LogCap = 200

// Ledger is the single-writer store handle. Callers hold a handle, not
// a singleton; all operations go through it.
type Ledger struct {
	doc   *secondary.SnapshotDoc
	index map[string]int // asset id → position in doc.Records
	disk  secondary.SnapshotStore
}

// Open loads the persisted document, or seeds the store from the given
// default when none exists yet. A persisted document with a mismatched
// schema version is rejected, never merged.
func Open(ctx context.Context, disk secondary.SnapshotStore, seed func() *secondary.SnapshotDoc) (*Ledger, error) {
	doc, err := disk.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if doc == nil {
		doc = seed()
		if err := disk.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
	} else if err := validateDoc(doc); err != nil {
		return nil, err
	}

	l := &Ledger{doc: doc, disk: disk}
	l.reindex()
	return l, nil
}

// mutate applies fn to a fresh copy of the document, persists the copy,
// and swaps it in. The previous document is never modified in place -
// this is what makes saves whole-snapshot consistent.
func (l *Ledger) mutate(ctx context.Context, fn func(doc *secondary.SnapshotDoc) error) error {
	next := cloneDoc(l.doc)
	if err := fn(next); err != nil {
		return err
	}
	if err := l.disk.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	l.doc = next
	l.reindex()
	return nil
}

// reindex rebuilds the id→record index from the current document.
// Rebuilt on every mutation; lookups stay O(1).
func (l *Ledger) reindex() {
	l.index = make(map[string]int, len(l.doc.Records))
	for i, rec := range l.doc.Records {
		l.index[rec.ID] = i
	}
}

func validateDoc(doc *secondary.SnapshotDoc) error {
	ids := make([]string, len(doc.Records))
	for i, rec := range doc.Records {
		ids[i] = rec.ID
	}
	return snapshot.ValidateImport(snapshot.ImportContext{
		SchemaVersion: doc.SchemaVersion,
		PhaseCount:    len(doc.Phases),
		RecordIDs:     ids,
	})
}

// ----------------------------------------------------------------------------
// secondary.AssetRepository
// ----------------------------------------------------------------------------

// Create persists a new asset at the end of the stored order.
func (l *Ledger) Create(ctx context.Context, rec *secondary.AssetRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("asset ID must be pre-populated by service layer")
	}
	if rec.Status == "" {
		return fmt.Errorf("asset Status must be pre-populated by service layer")
	}
	if _, taken := l.index[rec.ID]; taken {
		return fmt.Errorf("%w: %s", asset.ErrDuplicateID, rec.ID)
	}

	return l.mutate(ctx, func(doc *secondary.SnapshotDoc) error {
		doc.Records = append(doc.Records, cloneAsset(rec))
		return nil
	})
}

// GetByID retrieves an asset by its id.
func (l *Ledger) GetByID(ctx context.Context, id string) (*secondary.AssetRecord, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", asset.ErrNotFound, id)
	}
	return cloneAsset(l.doc.Records[i]), nil
}

// List retrieves assets matching the filters, preserving stored order.
func (l *Ledger) List(ctx context.Context, filters secondary.AssetFilters) ([]*secondary.AssetRecord, error) {
	var out []*secondary.AssetRecord
	for _, rec := range l.doc.Records {
		if filters.Kind != "" && rec.Kind != filters.Kind {
			continue
		}
		if filters.Status != "" && rec.Status != filters.Status {
			continue
		}
		if filters.Phase >= 0 && rec.Phase != filters.Phase {
			continue
		}
		if filters.PinnedOnly && !rec.Pinned {
			continue
		}
		out = append(out, cloneAsset(rec))
	}
	return out, nil
}

// Update replaces an existing asset record wholesale.
func (l *Ledger) Update(ctx context.Context, rec *secondary.AssetRecord) error {
	i, ok := l.index[rec.ID]
	if !ok {
		return fmt.Errorf("%w: %s", asset.ErrNotFound, rec.ID)
	}
	return l.mutate(ctx, func(doc *secondary.SnapshotDoc) error {
		doc.Records[i] = cloneAsset(rec)
		return nil
	})
}

// Delete removes an asset. No cascade: other assets' cross-refs keep
// pointing at the deleted id and simply fail to resolve.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", asset.ErrNotFound, id)
	}
	return l.mutate(ctx, func(doc *secondary.SnapshotDoc) error {
		doc.Records = append(doc.Records[:i], doc.Records[i+1:]...)
		return nil
	})
}

// Pin pins an asset to keep it visible.
func (l *Ledger) Pin(ctx context.Context, id string) error {
	return l.setPinned(ctx, id, true)
}

// Unpin unpins an asset.
func (l *Ledger) Unpin(ctx context.Context, id string) error {
	return l.setPinned(ctx, id, false)
}

func (l *Ledger) setPinned(ctx context.Context, id string, pinned bool) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", asset.ErrNotFound, id)
	}
	return l.mutate(ctx, func(doc *secondary.SnapshotDoc) error {
		doc.Records[i].Pinned = pinned
		return nil
	})
}

// Exists reports whether an id is taken, across all kind partitions.
func (l *Ledger) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := l.index[id]
	return ok, nil
}

// NextID returns the next id for a kind code: max existing sequence in
// that partition plus one. Deletion gaps are never backfilled below the
// current maximum.
func (l *Ledger) NextID(ctx context.Context, kindCode string) (string, error) {
	maxSeq := 0
	for _, rec := range l.doc.Records {
		parsed, err := asset.ParseID(rec.ID)
		if err != nil || parsed.Code != kindCode {
			continue
		}
		if parsed.Sequence > maxSeq {
			maxSeq = parsed.Sequence
		}
	}
	return asset.NextID(kindCode, maxSeq), nil
}

// ----------------------------------------------------------------------------
// secondary.PhaseRepository
// ----------------------------------------------------------------------------

// ListPhases retrieves all phases in order.
func (l *Ledger) ListPhases(ctx context.Context) ([]secondary.PhaseRecord, error) {
	out := make([]secondary.PhaseRecord, len(l.doc.Phases))
	copy(out, l.doc.Phases)
	return out, nil
}

// SetPhaseStatus updates one phase's status.
func (l *Ledger) SetPhaseStatus(ctx context.Context, id int, status string) error {
	if id < 0 || id >= len(l.doc.Phases) {
		return fmt.Errorf("phase %d not found", id)
	}
	return l.mutate(ctx, func(doc *secondary.SnapshotDoc) error {
		doc.Phases[id].Status = status
		return nil
	})
}

// ----------------------------------------------------------------------------
// secondary.MutationLogRepository
// ----------------------------------------------------------------------------

// Append writes one log entry, newest first, evicting the oldest once
// the cap is reached.
func (l *Ledger) Append(ctx context.Context, entry secondary.LogEntry) error {
	return l.mutate(ctx, func(doc *secondary.SnapshotDoc) error {
		doc.Log = append([]secondary.LogEntry{entry}, doc.Log...)
		if len(doc.Log) > LogCap {
			doc.Log = doc.Log[:LogCap]
		}
		return nil
	})
}

// Tail retrieves the most recent entries, newest first.
func (l *Ledger) Tail(ctx context.Context, limit int) ([]secondary.LogEntry, error) {
	n := len(l.doc.Log)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]secondary.LogEntry, n)
	copy(out, l.doc.Log[:n])
	return out, nil
}

// ----------------------------------------------------------------------------
// secondary.ReferenceRepository
// ----------------------------------------------------------------------------

// Rules retrieves the operating rules.
func (l *Ledger) Rules(ctx context.Context) ([]secondary.NoteEntry, error) {
	out := make([]secondary.NoteEntry, len(l.doc.Rules))
	copy(out, l.doc.Rules)
	return out, nil
}

// Commands retrieves the saved command templates.
func (l *Ledger) Commands(ctx context.Context) ([]secondary.CommandEntry, error) {
	out := make([]secondary.CommandEntry, len(l.doc.Commands))
	copy(out, l.doc.Commands)
	return out, nil
}

// AppendChatPaste stores a chat paste that named no valid target.
func (l *Ledger) AppendChatPaste(ctx context.Context, paste secondary.ChatPaste) error {
	return l.mutate(ctx, func(doc *secondary.SnapshotDoc) error {
		doc.ChatPastes = append([]secondary.ChatPaste{paste}, doc.ChatPastes...)
		return nil
	})
}

// ----------------------------------------------------------------------------
// secondary.DocumentStore
// ----------------------------------------------------------------------------

// Document returns a deep copy of the current document.
func (l *Ledger) Document(ctx context.Context) (*secondary.SnapshotDoc, error) {
	return cloneDoc(l.doc), nil
}

// Replace swaps the entire document atomically and persists it.
// A document failing validation leaves the store untouched.
func (l *Ledger) Replace(ctx context.Context, doc *secondary.SnapshotDoc) error {
	if err := validateDoc(doc); err != nil {
		return err
	}
	incoming := cloneDoc(doc)
	if err := l.disk.Save(ctx, incoming); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	l.doc = incoming
	l.reindex()
	return nil
}

// Ensure Ledger implements the secondary ports
var (
	_ secondary.AssetRepository       = (*Ledger)(nil)
	_ secondary.PhaseRepository       = (*Ledger)(nil)
	_ secondary.MutationLogRepository = (*Ledger)(nil)
	_ secondary.ReferenceRepository   = (*Ledger)(nil)
	_ secondary.DocumentStore         = (*Ledger)(nil)
)
