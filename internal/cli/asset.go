package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/opsdeck/internal/config"
	"github.com/example/opsdeck/internal/core/asset"
	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/wire"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage infrastructure assets",
	Long:  "Create, list, and manage assets in the opsdeck ledger",
}

var assetCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new asset",
	Long: `Create a new asset of the given kind. The id is allocated from the
kind's sequence unless --id supplies one explicitly.

Examples:
  opsdeck asset create "API Gateway" --kind service --port 8080
  opsdeck asset create "Stripe" --kind external-api
  opsdeck asset create "Legacy Batch" --kind custom --id CST-042`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		kind, _ := cmd.Flags().GetString("kind")
		id, _ := cmd.Flags().GetString("id")
		port, _ := cmd.Flags().GetString("port")
		notes, _ := cmd.Flags().GetString("notes")
		phase, _ := cmd.Flags().GetInt("phase")

		return wire.AssetAdapter().Create(NewContext(), primary.CreateAssetRequest{
			ID:    id,
			Name:  name,
			Kind:  kind,
			Port:  port,
			Notes: notes,
			Phase: phase,
		})
	},
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		status, _ := cmd.Flags().GetString("status")
		phase, _ := cmd.Flags().GetInt("phase")
		pinned, _ := cmd.Flags().GetBool("pinned")

		return wire.AssetAdapter().List(NewContext(), primary.AssetFilters{
			Kind:       kind,
			Status:     status,
			Phase:      phase,
			PinnedOnly: pinned,
		})
	},
}

var assetShowCmd = &cobra.Command{
	Use:   "show [asset-id]",
	Short: "Show asset details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AssetAdapter().Show(NewContext(), args[0])
	},
}

var assetSetCmd = &cobra.Command{
	Use:   "set [asset-id] [field] [value]",
	Short: "Update a single field on an asset",
	Long: `Update one field: name, kind, status, phase, port, notes, or health.

Examples:
  opsdeck asset set SVC-001 port 8443
  opsdeck asset set SVC-001 status COMPLETE
  opsdeck asset set DBS-001 health "pg_isready -h localhost"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := wire.AssetService().SetField(NewContext(), primary.SetFieldRequest{
			AssetID: args[0],
			Field:   args[1],
			Value:   args[2],
		})
		if err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}

		fmt.Printf("✓ Asset %s updated: %s = %s\n", args[0], args[1], args[2])
		return nil
	},
}

var assetAdvanceCmd = &cobra.Command{
	Use:   "advance [asset-id]",
	Short: "Advance the asset's status to the next lifecycle label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := wire.AssetService().AdvanceStatus(NewContext(), args[0])
		if err != nil {
			return fmt.Errorf("failed to advance status: %w", err)
		}

		fmt.Printf("✓ Asset %s advanced to %s\n", updated.ID, updated.Status)
		return nil
	},
}

var assetDeleteCmd = &cobra.Command{
	Use:   "delete [asset-id]",
	Short: "Delete an asset",
	Long: `Delete an asset from the ledger.

No cascade: cross-references from other assets to the deleted id are
left dangling and render as "(dangling)" in asset show.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if err := wire.AssetService().DeleteAsset(NewContext(), id); err != nil {
			return fmt.Errorf("failed to delete asset: %w", err)
		}

		// Deleting the focused asset must not leave a stale focus
		if err := config.ClearFocus(id); err != nil {
			fmt.Printf("⚠️  Could not clear focus: %v\n", err)
		}

		fmt.Printf("✓ Deleted asset %s\n", id)
		return nil
	},
}

var assetPinCmd = &cobra.Command{
	Use:   "pin [asset-id]",
	Short: "Pin asset to keep it visible",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.AssetService().PinAsset(NewContext(), args[0]); err != nil {
			return fmt.Errorf("failed to pin asset: %w", err)
		}

		fmt.Printf("✓ Asset %s pinned 📌\n", args[0])
		return nil
	},
}

var assetUnpinCmd = &cobra.Command{
	Use:   "unpin [asset-id]",
	Short: "Unpin asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.AssetService().UnpinAsset(NewContext(), args[0]); err != nil {
			return fmt.Errorf("failed to unpin asset: %w", err)
		}

		fmt.Printf("✓ Asset %s unpinned\n", args[0])
		return nil
	},
}

var assetNoteCmd = &cobra.Command{
	Use:   "note [asset-id] [text]",
	Short: "Append an annotation to an asset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.AssetService().Annotate(NewContext(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to annotate asset: %w", err)
		}

		fmt.Printf("✓ Annotation added to %s\n", args[0])
		return nil
	},
}

var assetAttachCmd = &cobra.Command{
	Use:   "attach [asset-id] [title] [text]",
	Short: "Attach a document to an asset",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := wire.AssetService().AttachDocument(NewContext(), primary.AttachDocumentRequest{
			AssetID: args[0],
			Title:   args[1],
			Text:    args[2],
		})
		if err != nil {
			return fmt.Errorf("failed to attach document: %w", err)
		}

		fmt.Printf("✓ Document attached to %s\n", args[0])
		return nil
	},
}

var assetRefCmd = &cobra.Command{
	Use:   "ref [asset-id] [value]",
	Short: "Add a cross-reference to an asset",
	Long: `Add a cross-reference entry. The --type flag selects the list:
book (documentation code), depends-on, or depended-on-by.

Dependency ids are not validated against the store: references may
dangle and are tolerated everywhere they are resolved.

Examples:
  opsdeck asset ref SVC-001 DBS-001 --type depends-on
  opsdeck asset ref PLT-001 A7 --type book`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		refType, _ := cmd.Flags().GetString("type")

		err := wire.AssetService().AddRef(NewContext(), primary.RefRequest{
			AssetID: args[0],
			Kind:    primary.RefKind(refType),
			Value:   args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to add reference: %w", err)
		}

		fmt.Printf("✓ Reference %s added to %s\n", args[1], args[0])
		return nil
	},
}

var assetUnrefCmd = &cobra.Command{
	Use:   "unref [asset-id] [value]",
	Short: "Remove a cross-reference from an asset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		refType, _ := cmd.Flags().GetString("type")

		err := wire.AssetService().RemoveRef(NewContext(), primary.RefRequest{
			AssetID: args[0],
			Kind:    primary.RefKind(refType),
			Value:   args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to remove reference: %w", err)
		}

		fmt.Printf("✓ Reference %s removed from %s\n", args[1], args[0])
		return nil
	},
}

var assetRefsCmd = &cobra.Command{
	Use:   "refs [asset-id]",
	Short: "Show resolved dependencies for an asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AssetAdapter().Refs(NewContext(), args[0])
	},
}

var assetHealthCmd = &cobra.Command{
	Use:   "health [asset-id]",
	Short: "Print the asset's health-check command",
	Long: `Print the asset's health-check command verbatim so an external
clipboard collaborator can pick it up. The command is never executed
by opsdeck itself.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AssetAdapter().Health(NewContext(), args[0])
	},
}

var assetKindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the asset kinds and their id prefixes",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("\n%-15s %s\n", "KIND", "PREFIX")
		fmt.Println("──────────────────────")
		for _, k := range asset.Kinds() {
			fmt.Printf("%-15s %s\n", k, k.Code())
		}
		fmt.Println()
		return nil
	},
}

// AssetCmd returns the asset command
func AssetCmd() *cobra.Command {
	// Add flags
	assetCreateCmd.Flags().StringP("kind", "k", "service", "Asset kind ("+kindUsage()+")")
	assetCreateCmd.Flags().String("id", "", "Explicit asset id (default: allocated)")
	assetCreateCmd.Flags().StringP("port", "p", "", "Network port")
	assetCreateCmd.Flags().StringP("notes", "n", "", "Free-text notes")
	assetCreateCmd.Flags().Int("phase", 0, "Project phase (0-"+strconv.Itoa(asset.MaxPhase)+")")
	assetListCmd.Flags().StringP("kind", "k", "", "Filter by kind")
	assetListCmd.Flags().StringP("status", "s", "", "Filter by status")
	assetListCmd.Flags().Int("phase", -1, "Filter by phase (0-"+strconv.Itoa(asset.MaxPhase)+")")
	assetListCmd.Flags().Bool("pinned", false, "Only pinned assets")
	assetRefCmd.Flags().StringP("type", "t", "depends-on", "Reference type (book, depends-on, depended-on-by)")
	assetUnrefCmd.Flags().StringP("type", "t", "depends-on", "Reference type (book, depends-on, depended-on-by)")

	// Add subcommands
	assetCmd.AddCommand(assetCreateCmd)
	assetCmd.AddCommand(assetListCmd)
	assetCmd.AddCommand(assetShowCmd)
	assetCmd.AddCommand(assetSetCmd)
	assetCmd.AddCommand(assetAdvanceCmd)
	assetCmd.AddCommand(assetDeleteCmd)
	assetCmd.AddCommand(assetPinCmd)
	assetCmd.AddCommand(assetUnpinCmd)
	assetCmd.AddCommand(assetNoteCmd)
	assetCmd.AddCommand(assetAttachCmd)
	assetCmd.AddCommand(assetRefCmd)
	assetCmd.AddCommand(assetUnrefCmd)
	assetCmd.AddCommand(assetRefsCmd)
	assetCmd.AddCommand(assetHealthCmd)
	assetCmd.AddCommand(assetKindsCmd)

	return assetCmd
}

func kindUsage() string {
	usage := ""
	for i, k := range asset.Kinds() {
		if i > 0 {
			usage += ", "
		}
		usage += string(k)
	}
	return usage
}
