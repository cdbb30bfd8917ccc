package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/config"
	"github.com/example/opsdeck/internal/wire"
)

// FocusCmd returns the focus command
func FocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus [asset-id]",
		Short: "Set or show the currently focused asset",
		Long: `Focus on one asset. The focus is stored in config and shows up
in 'opsdeck status'. Deleting the focused asset clears it.

Examples:
  opsdeck focus SVC-001    # Focus on an asset
  opsdeck focus --show     # Show current focus
  opsdeck focus --clear    # Clear the current focus`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFocus,
	}
	cmd.Flags().Bool("show", false, "Show current focus without changing it")
	cmd.Flags().Bool("clear", false, "Clear the current focus")
	return cmd
}

func runFocus(cmd *cobra.Command, args []string) error {
	showOnly, _ := cmd.Flags().GetBool("show")
	clearFlag, _ := cmd.Flags().GetBool("clear")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if showOnly {
		if cfg.CurrentFocus == "" {
			fmt.Println("No focus set")
			return nil
		}
		asset, err := wire.AssetService().GetAsset(NewContext(), cfg.CurrentFocus)
		if err != nil {
			fmt.Printf("Focus: %s (asset not found)\n", cfg.CurrentFocus)
			return nil
		}
		fmt.Printf("Focus: %s - %s [%s]\n", asset.ID, asset.Name, asset.Status)
		return nil
	}

	if clearFlag {
		cfg.CurrentFocus = ""
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Println("✓ Focus cleared")
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("asset id required (or use --show / --clear)")
	}

	// Focus targets must exist; dangling focus is only tolerated after
	// external edits, never set deliberately
	asset, err := wire.AssetService().GetAsset(NewContext(), args[0])
	if err != nil {
		return fmt.Errorf("cannot focus %s: %w", args[0], err)
	}

	cfg.CurrentFocus = asset.ID
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ Focused on %s: %s\n", asset.ID, asset.Name)
	return nil
}
