package db

// SchemaSQL is the complete schema for fresh opsdeck installs.
//
// The store is a single-slot snapshot table: the whole document is
// written as one row on every mutation. There is no per-entity table
// and no migration concept - a schema_version that this build does not
// understand is a hard load failure, never a silent merge.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests use
// it via GetSchemaSQL() so test schemas cannot drift from production.
const SchemaSQL = `
-- State (single-slot whole-document snapshot)
CREATE TABLE IF NOT EXISTS state (
	slot INTEGER PRIMARY KEY CHECK(slot = 1),
	schema_version INTEGER NOT NULL,
	doc TEXT NOT NULL,
	saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
