package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/adapters/filestore"
	"github.com/example/opsdeck/internal/adapters/sqlite"
	"github.com/example/opsdeck/internal/config"
	"github.com/example/opsdeck/internal/core/snapshot"
	"github.com/example/opsdeck/internal/db"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check store health",
		Long: `Run diagnostics against the opsdeck configuration and store:
- config readability and backend selection
- store reachability
- schema version
- record and log counts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := 0

			cfg, err := config.Load()
			if err != nil {
				fmt.Printf("✗ Config: %v\n", err)
				return fmt.Errorf("cannot continue without config")
			}
			fmt.Printf("✓ Config: backend=%s actor=%s\n", cfg.Backend, cfg.Actor)

			dir, err := config.Dir()
			if err == nil {
				if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
					fmt.Printf("✗ Home directory missing: %s (run 'opsdeck init')\n", dir)
					problems++
				} else {
					fmt.Printf("✓ Home directory: %s\n", dir)
				}
			}

			store, path, err := openStoreForDoctor(cfg)
			if err != nil {
				fmt.Printf("✗ Store: %v\n", err)
				return fmt.Errorf("doctor found %d problem(s)", problems+1)
			}
			fmt.Printf("✓ Store reachable: %s\n", path)

			doc, err := store.Load(context.Background())
			switch {
			case errors.Is(err, snapshot.ErrSchemaMismatch):
				fmt.Printf("✗ Schema: %v (expected version %d)\n", err, snapshot.SchemaVersion)
				problems++
			case err != nil:
				fmt.Printf("✗ Load: %v\n", err)
				problems++
			case doc == nil:
				fmt.Println("  Store is empty (seeded on first use)")
			default:
				fmt.Printf("✓ Schema version: %d\n", doc.SchemaVersion)
				fmt.Printf("✓ Contents: %d assets, %d phases, %d log entries\n",
					len(doc.Records), len(doc.Phases), len(doc.Log))
				if dupes := duplicateIDs(doc); len(dupes) > 0 {
					fmt.Printf("✗ Duplicate ids: %v\n", dupes)
					problems++
				}
			}

			fmt.Println()
			if problems > 0 {
				return fmt.Errorf("doctor found %d problem(s)", problems)
			}
			fmt.Println("All checks passed")
			return nil
		},
	}
}

// openStoreForDoctor opens the configured backend without going through
// wire, so a broken store still produces a diagnostic instead of a
// startup failure.
func openStoreForDoctor(cfg *config.Config) (secondary.SnapshotStore, string, error) {
	if cfg.Backend == config.BackendFile {
		path := cfg.StorePath
		if path == "" {
			dir, err := config.Dir()
			if err != nil {
				return nil, "", err
			}
			path = filepath.Join(dir, "opsdeck.json")
		}
		return filestore.NewSnapshotFile(path), path, nil
	}

	path := cfg.StorePath
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, "", err
		}
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, "", err
	}
	return sqlite.NewSnapshotStore(database), path, nil
}

func duplicateIDs(doc *secondary.SnapshotDoc) []string {
	seen := map[string]bool{}
	var dupes []string
	for _, r := range doc.Records {
		if seen[r.ID] {
			dupes = append(dupes, r.ID)
		}
		seen[r.ID] = true
	}
	return dupes
}
