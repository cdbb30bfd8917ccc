package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/wire"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Browse the operating reference tables",
	Long:  "Operating rules and saved command templates shipped inside the ledger",
}

var bookRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the operating rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := wire.ReferenceService().Rules(NewContext())
		if err != nil {
			return fmt.Errorf("failed to list rules: %w", err)
		}

		if len(rules) == 0 {
			fmt.Println("No rules recorded")
			return nil
		}

		for _, r := range rules {
			fmt.Printf("%s  %s\n", r.Timestamp, r.Text)
		}
		return nil
	},
}

var bookCommandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the saved command templates",
	Long: `List the saved command templates. Bodies are printed verbatim for
an external clipboard collaborator; opsdeck never executes them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmds, err := wire.ReferenceService().Commands(NewContext())
		if err != nil {
			return fmt.Errorf("failed to list commands: %w", err)
		}

		if len(cmds) == 0 {
			fmt.Println("No commands recorded")
			return nil
		}

		for _, c := range cmds {
			fmt.Printf("\n%s\n", c.Name)
			if c.Desc != "" {
				fmt.Printf("  %s\n", c.Desc)
			}
			fmt.Printf("  $ %s\n", c.Command)
		}
		fmt.Println()
		return nil
	},
}

// BookCmd returns the book command
func BookCmd() *cobra.Command {
	bookCmd.AddCommand(bookRulesCmd)
	bookCmd.AddCommand(bookCommandsCmd)

	return bookCmd
}
