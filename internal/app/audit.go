package app

import (
	"context"
	"time"

	"github.com/example/opsdeck/internal/ctxutil"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// newLogEntry stamps a mutation log entry with the current time and the
// actor carried in the context (falling back to a generic operator).
func newLogEntry(ctx context.Context, message string) secondary.LogEntry {
	actor := ctxutil.ActorFromContext(ctx)
	if actor == "" {
		actor = "operator"
	}
	return secondary.LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Actor:     actor,
		Message:   message,
	}
}
