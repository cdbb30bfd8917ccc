// Package snapshot contains the pure business logic for snapshot
// documents. This is part of the Functional Core - no I/O, only pure
// functions.
package snapshot

import (
	"errors"
	"fmt"
)

// SchemaVersion is the current snapshot document schema. Documents
// written by this build always carry it; documents loaded or imported
// with any other value are rejected outright rather than merged.
const SchemaVersion = 1

// ErrSchemaMismatch is returned when a loaded or imported document does
// not carry the expected schema version.
var ErrSchemaMismatch = errors.New("snapshot schema mismatch")

// ImportContext provides context for snapshot import guards. Populated
// by the caller from the parsed document.
type ImportContext struct {
	SchemaVersion int
	PhaseCount    int
	RecordIDs     []string
}

// ValidateImport evaluates whether a parsed document may atomically
// replace the store. Import must fail closed: any violation rejects the
// whole document, never a partial apply.
func ValidateImport(ctx ImportContext) error {
	if ctx.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: document is v%d, this build reads v%d",
			ErrSchemaMismatch, ctx.SchemaVersion, SchemaVersion)
	}

	seen := make(map[string]bool, len(ctx.RecordIDs))
	for _, id := range ctx.RecordIDs {
		if seen[id] {
			return fmt.Errorf("%w: duplicate record id %s", ErrSchemaMismatch, id)
		}
		seen[id] = true
	}

	return nil
}
