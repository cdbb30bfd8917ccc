// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// AssetRepository defines the secondary port for asset persistence.
// Lookups by id must be O(1): the store maintains an id→record index
// alongside the record collection.
type AssetRepository interface {
	// Create persists a new asset. The record must have ID and Status
	// pre-populated by the service layer.
	Create(ctx context.Context, asset *AssetRecord) error

	// GetByID retrieves an asset by its id. Returns an error wrapping
	// asset.ErrNotFound when the id is absent (dangling references land
	// here and are tolerated by callers).
	GetByID(ctx context.Context, id string) (*AssetRecord, error)

	// List retrieves assets matching the given filters, in stored order.
	// Search depends on this order being stable across calls.
	List(ctx context.Context, filters AssetFilters) ([]*AssetRecord, error)

	// Update replaces an existing asset record wholesale.
	Update(ctx context.Context, asset *AssetRecord) error

	// Delete removes an asset. Unconditional: references to the deleted
	// id in other assets' cross-refs are left dangling by design.
	Delete(ctx context.Context, id string) error

	// Pin pins an asset to keep it visible.
	Pin(ctx context.Context, id string) error

	// Unpin unpins an asset.
	Unpin(ctx context.Context, id string) error

	// Exists reports whether an id is taken, across all kind partitions.
	Exists(ctx context.Context, id string) (bool, error)

	// NextID returns the next available id for a kind code. Sequence
	// numbers are not reused after deletions; gaps are acceptable.
	NextID(ctx context.Context, kindCode string) (string, error)
}

// AssetRecord represents an asset as stored in the snapshot document.
// JSON tags follow the exported document shape.
type AssetRecord struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Kind          string        `json:"kind"`
	Status        string        `json:"status"`
	Phase         int           `json:"phase"`
	Port          string        `json:"port,omitempty"`
	CrossRefs     CrossRefs     `json:"crossRefs"`
	Notes         string        `json:"notes,omitempty"`
	HealthCommand string        `json:"healthCheckCommand,omitempty"`
	Pinned        bool          `json:"pinned"`
	Annotations   []Annotation  `json:"annotations"`
	Documents     []AttachedDoc `json:"attachedDocuments"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
}

// CrossRefs holds an asset's typed cross-reference lists. BookRefs are
// opaque documentation codes with no referential integrity requirement;
// DependsOn/DependedOnBy should contain asset ids but may dangle.
type CrossRefs struct {
	BookRefs     []string `json:"bookRefs"`
	DependsOn    []string `json:"dependsOn"`
	DependedOnBy []string `json:"dependedOnBy"`
}

// Annotation is one append-only annotation entry, newest first.
type Annotation struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// AttachedDoc is one attached document, newest first. Populated by the
// chat-paste ingestion collaborator.
type AttachedDoc struct {
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
	Text      string `json:"text"`
}

// AssetFilters contains filter options for querying assets.
// Phase filters only when >= 0.
type AssetFilters struct {
	Kind       string
	Status     string
	Phase      int
	PinnedOnly bool
}

// NoFilters returns the zero filter set (Phase disabled).
func NoFilters() AssetFilters {
	return AssetFilters{Phase: -1}
}

// PhaseRepository defines the secondary port for phase persistence.
// The catalogue is fixed; only statuses change.
type PhaseRepository interface {
	// ListPhases retrieves all 8 phases in order.
	ListPhases(ctx context.Context) ([]PhaseRecord, error)

	// SetPhaseStatus updates one phase's status.
	SetPhaseStatus(ctx context.Context, id int, status string) error
}

// PhaseRecord represents a phase as stored in the snapshot document.
type PhaseRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Desc      string `json:"description"`
	Criterion string `json:"completionCriterion"`
}

// MutationLogRepository defines the secondary port for the audit log.
// The log is append-only and capped: the store evicts the oldest entry
// once the cap is reached.
type MutationLogRepository interface {
	// Append writes one log entry. Every mutating operation appends
	// exactly one entry.
	Append(ctx context.Context, entry LogEntry) error

	// Tail retrieves the most recent entries, newest first.
	Tail(ctx context.Context, limit int) ([]LogEntry, error)
}

// LogEntry is one mutation log entry.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Actor     string `json:"actor"`
	Message   string `json:"message"`
}

// ReferenceRepository defines the secondary port for the auxiliary
// reference tables shipped inside the snapshot document.
type ReferenceRepository interface {
	// Rules retrieves the operating rules, in stored order.
	Rules(ctx context.Context) ([]NoteEntry, error)

	// Commands retrieves the saved command templates, in stored order.
	Commands(ctx context.Context) ([]CommandEntry, error)

	// AppendChatPaste stores a chat paste that named no valid target.
	AppendChatPaste(ctx context.Context, paste ChatPaste) error
}

// NoteEntry is a timestamped free-text entry (errors, learnings, rules,
// bookkeeping).
type NoteEntry struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// CommandEntry is a named command template. The body is opaque: it is
// surfaced for an external clipboard collaborator, never executed.
type CommandEntry struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Desc    string `json:"description,omitempty"`
}

// TaskEntry is one checklist entry.
type TaskEntry struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
}

// FileEntry is a timestamped titled text blob (captures, files).
type FileEntry struct {
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
	Text      string `json:"text"`
}

// ChatPaste is the shape delivered by the chat-paste ingestion
// collaborator. Target, when present, names an asset id.
type ChatPaste struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Text      string `json:"text"`
	Target    string `json:"target,omitempty"`
	Section   string `json:"section,omitempty"`
}

// SnapshotDoc is the entire store serialized as one document. Saves are
// whole-snapshot overwrites; loads of a mismatched schemaVersion fail
// hard rather than merging.
type SnapshotDoc struct {
	SchemaVersion int            `json:"schemaVersion"`
	Phases        []PhaseRecord  `json:"phases"`
	Records       []*AssetRecord `json:"records"`
	Errors        []NoteEntry    `json:"errors"`
	Learnings     []NoteEntry    `json:"learnings"`
	Rules         []NoteEntry    `json:"rules"`
	Bookkeeping   []NoteEntry    `json:"bookkeeping"`
	Commands      []CommandEntry `json:"commands"`
	Tasks         []TaskEntry    `json:"tasks"`
	Captures      []FileEntry    `json:"captures"`
	Files         []FileEntry    `json:"files"`
	ChatPastes    []ChatPaste    `json:"chatPastes"`
	Log           []LogEntry     `json:"log"`
}

// SnapshotStore defines the secondary port backing the in-memory store.
// Save is a synchronous full-document overwrite; Load returns nil when
// no document exists yet so the caller can seed the default catalogue.
type SnapshotStore interface {
	// Load reads the persisted document, or nil if none exists.
	Load(ctx context.Context) (*SnapshotDoc, error)

	// Save overwrites the persisted document with the given snapshot.
	Save(ctx context.Context, doc *SnapshotDoc) error
}

// DocumentStore exposes the whole document for export/import. Replace
// is a single atomic swap of the entire store, never a field merge.
type DocumentStore interface {
	// Document returns a deep copy of the current document.
	Document(ctx context.Context) (*SnapshotDoc, error)

	// Replace swaps the entire document and persists it.
	Replace(ctx context.Context, doc *SnapshotDoc) error
}

// SnapshotExchange defines the secondary port for moving documents
// through files (export/import).
type SnapshotExchange interface {
	// Write serializes the document to the given path.
	Write(path string, doc *SnapshotDoc) error

	// Read parses a document from the given path. Parse errors must be
	// returned unchanged so import can fail closed.
	Read(path string) (*SnapshotDoc, error)
}
