package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/config"
	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a dashboard overview of the ledger",
		Long: `Display a summary of the ledger:
- phase progress
- asset counts per status
- pinned assets
- current focus (if any)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()

			fmt.Println("opsdeck status")
			fmt.Println()

			// Phase progress
			phases, err := wire.PhaseService().ListPhases(ctx)
			if err != nil {
				return fmt.Errorf("failed to load phases: %w", err)
			}
			fmt.Println("Phases:")
			for _, p := range phases {
				fmt.Printf("  %d %s %s\n", p.ID, phaseStatusMarker(p.Status), p.Name)
			}
			fmt.Println()

			// Asset counts per status, in stored order
			assets, err := wire.AssetService().ListAssets(ctx, primary.AssetFilters{Phase: -1})
			if err != nil {
				return fmt.Errorf("failed to load assets: %w", err)
			}

			counts := map[string]int{}
			var order []string
			var pinned []*primary.Asset
			for _, a := range assets {
				if counts[a.Status] == 0 {
					order = append(order, a.Status)
				}
				counts[a.Status]++
				if a.Pinned {
					pinned = append(pinned, a)
				}
			}

			fmt.Printf("Assets: %d\n", len(assets))
			for _, status := range order {
				fmt.Printf("  %-22s %d\n", statusLabel(status), counts[status])
			}
			fmt.Println()

			if len(pinned) > 0 {
				fmt.Println("Pinned:")
				for _, a := range pinned {
					fmt.Printf("  - %s: %s %s\n", idLabel(a.ID), a.Name, statusLabel(a.Status))
				}
				fmt.Println()
			}

			// Current focus from config
			cfg, cfgErr := config.Load()
			if cfgErr == nil && cfg.CurrentFocus != "" {
				focused, err := wire.AssetService().GetAsset(ctx, cfg.CurrentFocus)
				if err != nil {
					fmt.Printf("Focus: %s (asset not found)\n", cfg.CurrentFocus)
				} else {
					fmt.Printf("Focus: %s - %s %s\n", idLabel(focused.ID), focused.Name, statusLabel(focused.Status))
				}
				fmt.Println()
			}

			return nil
		},
	}
}

func phaseStatusMarker(status string) string {
	switch status {
	case "complete":
		return color.New(color.FgHiGreen).Sprint("✓")
	case "in-progress":
		return color.New(color.FgHiYellow).Sprint("▶")
	default:
		return color.New(color.FgHiBlack).Sprint("·")
	}
}

func statusLabel(status string) string {
	switch status {
	case "COMPLETE", "CLOSED", "REGISTERED":
		return color.New(color.FgHiGreen).Sprintf("[%s]", status)
	case "IN_PROGRESS", "OPEN":
		return color.New(color.FgHiYellow).Sprintf("[%s]", status)
	case "WAITING", "AWAITING_SCAN", "AWAITING_TEST", "AWAITING_REGISTRATION":
		return color.New(color.FgHiCyan).Sprintf("[%s]", status)
	default:
		return color.New(color.FgHiBlack).Sprintf("[%s]", status)
	}
}

func idLabel(id string) string {
	return color.New(color.FgHiBlue).Sprint(id)
}
