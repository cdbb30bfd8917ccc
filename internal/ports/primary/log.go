package primary

import "context"

// LogService defines the primary port for reading the mutation log.
// The log is append-only and capped; writing happens inside mutating
// operations, never through this port.
type LogService interface {
	// TailLog returns the most recent entries, newest first.
	TailLog(ctx context.Context, limit int) ([]*LogEntry, error)
}

// LogEntry is one mutation log entry.
type LogEntry struct {
	Timestamp string
	Actor     string
	Message   string
}
