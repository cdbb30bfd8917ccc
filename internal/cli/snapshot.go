package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export the entire store to a JSON file",
		Long: `Write the whole ledger document to a JSON file.

Without a path the export lands in the current directory under a
timestamped name (opsdeck-export-<yyyy-mm-ddThh-mm>.json).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			written, err := wire.SnapshotService().Export(NewContext(), path)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			fmt.Printf("✓ Exported store to %s\n", written)
			return nil
		},
	}
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Replace the entire store from a JSON file",
		Long: `Replace the whole ledger document with the file at path.

The swap is atomic: a parse error, schema version mismatch, or
duplicate id in the file aborts the import with the store untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.SnapshotService().Import(NewContext(), args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Imported store from %s\n", args[0])
			return nil
		},
	}
}

// IngestCmd returns the ingest command
func IngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [path]",
		Short: "Ingest chat pastes from a JSON file",
		Long: `Read an array of chat pastes ({timestamp, source, text, target?,
section?}) and process each one. A paste whose target names an existing
asset id becomes an attached document on that asset; everything else is
stored in the chat-paste table.

Example:
  opsdeck ingest pastes.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read pastes file: %w", err)
			}

			var pastes []primary.ChatPaste
			if err := json.Unmarshal(data, &pastes); err != nil {
				return fmt.Errorf("failed to parse pastes file: %w", err)
			}

			result, err := wire.SnapshotService().Ingest(NewContext(), pastes)
			if err != nil {
				return fmt.Errorf("failed to ingest: %w", err)
			}

			fmt.Printf("✓ Ingested %d pastes: %d attached, %d stored\n",
				result.Attached+result.Stored, result.Attached, result.Stored)
			return nil
		},
	}
}
