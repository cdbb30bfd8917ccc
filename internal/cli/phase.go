package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/wire"
)

var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Manage project phases",
	Long:  "Show and update the fixed catalogue of rollout phases (0-7)",
}

var phaseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all phases",
	RunE: func(cmd *cobra.Command, args []string) error {
		phases, err := wire.PhaseService().ListPhases(NewContext())
		if err != nil {
			return fmt.Errorf("failed to list phases: %w", err)
		}

		fmt.Printf("\n%-4s %-12s %s\n", "ID", "STATUS", "NAME")
		fmt.Println("────────────────────────────────────────────────")
		for _, p := range phases {
			fmt.Printf("%-4d %-12s %s\n", p.ID, p.Status, p.Name)
		}
		fmt.Println()

		return nil
	},
}

var phaseShowCmd = &cobra.Command{
	Use:   "show [phase-id]",
	Short: "Show phase details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid phase id %q", args[0])
		}

		phase, err := wire.PhaseService().GetPhase(NewContext(), id)
		if err != nil {
			return fmt.Errorf("failed to get phase: %w", err)
		}

		fmt.Printf("\nPhase %d: %s\n", phase.ID, phase.Name)
		fmt.Printf("Status:    %s\n", phase.Status)
		fmt.Printf("About:     %s\n", phase.Desc)
		fmt.Printf("Complete when: %s\n", phase.Criterion)
		fmt.Println()

		return nil
	},
}

var phaseSetCmd = &cobra.Command{
	Use:   "set [phase-id] [status]",
	Short: "Set a phase's status (waiting, in-progress, complete)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid phase id %q", args[0])
		}

		if err := wire.PhaseService().SetPhaseStatus(NewContext(), id, args[1]); err != nil {
			return fmt.Errorf("failed to update phase: %w", err)
		}

		fmt.Printf("✓ Phase %d set to %s\n", id, args[1])
		return nil
	},
}

// PhaseCmd returns the phase command
func PhaseCmd() *cobra.Command {
	phaseCmd.AddCommand(phaseListCmd)
	phaseCmd.AddCommand(phaseShowCmd)
	phaseCmd.AddCommand(phaseSetCmd)

	return phaseCmd
}
