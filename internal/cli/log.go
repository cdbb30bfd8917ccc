package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/wire"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect the mutation log",
	Long:  "The mutation log records every change to the ledger, newest first, capped at the most recent entries.",
}

var logTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show the most recent log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		entries, err := wire.LogService().TailLog(NewContext(), limit)
		if err != nil {
			return fmt.Errorf("failed to read log: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("Log is empty")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-12s %s\n", e.Timestamp, e.Actor, e.Message)
		}

		return nil
	},
}

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	logTailCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")

	logCmd.AddCommand(logTailCmd)

	return logCmd
}
