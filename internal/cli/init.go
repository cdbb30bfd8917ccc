package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/config"
	"github.com/example/opsdeck/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the opsdeck store",
		Long: `Initialize the opsdeck store at ~/.opsdeck and write config.json.
A fresh store is seeded with the default catalogue of phases and assets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}

			// Write config.json unless one already exists
			cfgPath := filepath.Join(dir, "config.json")
			if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
				if err := config.Save(config.Default()); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Printf("✓ Config written to %s\n", cfgPath)
			} else {
				fmt.Printf("Config already exists at %s\n", cfgPath)
			}

			// Opening the ledger seeds a missing store with the default
			// catalogue
			phases, err := wire.PhaseService().ListPhases(NewContext())
			if err != nil {
				return fmt.Errorf("failed to initialize store: %w", err)
			}

			fmt.Printf("✓ Store initialized (%d phases)\n", len(phases))
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  opsdeck status")
			fmt.Println("  opsdeck asset list")

			return nil
		},
	}
}
