//go:build ignore
// +build ignore

package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// One-off migration for installs created before the sqlite backend
// existed: reads the JSON snapshot file and writes it into the
// single-slot state table, then points config.json at sqlite.
//
// Usage: go run scripts/migrate_file_to_sqlite.go [-dry-run]

const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS state (
	slot INTEGER PRIMARY KEY CHECK(slot = 1),
	schema_version INTEGER NOT NULL,
	doc TEXT NOT NULL,
	saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview migration without executing")
	flag.Parse()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
		os.Exit(1)
	}
	filePath := filepath.Join(homeDir, ".opsdeck", "opsdeck.json")
	dbPath := filepath.Join(homeDir, ".opsdeck", "opsdeck.db")

	raw, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No JSON store found - nothing to migrate")
			return
		}
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", filePath, err)
		os.Exit(1)
	}

	// Sanity-check the document before touching the database. A doc we
	// cannot parse, or one written by a different schema version, must
	// not be carried across.
	var doc struct {
		SchemaVersion int               `json:"schemaVersion"`
		Assets        []json.RawMessage `json:"assets"`
		Log           []json.RawMessage `json:"log"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", filePath, err)
		os.Exit(1)
	}
	if doc.SchemaVersion != schemaVersion {
		fmt.Fprintf(os.Stderr, "Schema version mismatch: file has %d, this build expects %d\n",
			doc.SchemaVersion, schemaVersion)
		os.Exit(1)
	}

	fmt.Printf("Found JSON store: %d asset(s), %d log entries\n", len(doc.Assets), len(doc.Log))
	fmt.Printf("  %s -> %s\n\n", filePath, dbPath)

	if *dryRun {
		fmt.Println("=== DRY RUN - No changes made ===")
		return
	}

	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if _, err := database.Exec(schemaSQL); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying schema: %v\n", err)
		os.Exit(1)
	}

	var existing int
	if err := database.QueryRow("SELECT COUNT(*) FROM state").Scan(&existing); err != nil {
		fmt.Fprintf(os.Stderr, "Error checking state table: %v\n", err)
		os.Exit(1)
	}
	if existing > 0 {
		fmt.Fprintln(os.Stderr, "Database already holds a snapshot - refusing to overwrite")
		fmt.Fprintln(os.Stderr, "Delete ~/.opsdeck/opsdeck.db first if you really want to re-migrate")
		os.Exit(1)
	}

	_, err = database.Exec(
		"INSERT INTO state (slot, schema_version, doc) VALUES (1, ?, ?)",
		schemaVersion, string(raw),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Snapshot migrated")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Set \"backend\": \"sqlite\" in ~/.opsdeck/config.json")
	fmt.Printf("  2. Keep %s as a backup until you have verified the new store\n", filePath)
}
