package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/cli"
	"github.com/example/opsdeck/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "opsdeck",
		Short:   "opsdeck - operations center ledger for infrastructure assets",
		Version: version.String(),
		Long: `opsdeck is a CLI tool for tracking infrastructure assets (services,
databases, containers, external APIs, ...) through a shared status
lifecycle, with cross-references, annotations, multi-strategy search,
and a capped mutation log.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.AssetCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.PhaseCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.FocusCmd())
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.BookCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.IngestCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
