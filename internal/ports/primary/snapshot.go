package primary

import "context"

// SnapshotService defines the primary port for whole-store export,
// import, and chat-paste ingestion.
type SnapshotService interface {
	// Export writes the entire store to a file and returns the path.
	// Empty path picks a timestamped default name in the current dir.
	Export(ctx context.Context, path string) (string, error)

	// Import replaces the entire store with the document at path.
	// Atomic: parse or validation failure leaves the store untouched.
	Import(ctx context.Context, path string) error

	// Ingest processes chat pastes. Pastes whose Target names a valid
	// asset id become attached documents on that asset; the rest are
	// stored in the chatPastes table.
	Ingest(ctx context.Context, pastes []ChatPaste) (*IngestResult, error)
}

// ChatPaste is one ingestion payload from the chat collaborator.
type ChatPaste struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Text      string `json:"text"`
	Target    string `json:"target,omitempty"`
	Section   string `json:"section,omitempty"`
}

// IngestResult summarizes one ingestion run.
type IngestResult struct {
	Attached int // pastes attached to their target asset
	Stored   int // pastes stored without a valid target
}
