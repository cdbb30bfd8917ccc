package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/wire"
)

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search assets",
		Long: `Search assets with the multi-strategy matcher:
- substring over every stored field
- numeric queries match port exactly or any id containing the digits
- letter+digits queries match book-ref prefixes
- queries of 3+ characters fuzzy-match names (ordered subsequence)

Hits are shown in stored order; there is no ranking.

Examples:
  opsdeck search redis
  opsdeck search 6379
  opsdeck search a1
  opsdeck search dkr`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return wire.AssetAdapter().Search(NewContext(), query)
		},
	}
}
