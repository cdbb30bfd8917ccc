// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/opsdeck/internal/ports/primary"
)

// AssetAdapter is a thin adapter that translates CLI operations to
// AssetService calls. It depends only on the AssetService interface,
// enabling easy testing with mocks.
type AssetAdapter struct {
	service primary.AssetService
	out     io.Writer
}

// NewAssetAdapter creates a new AssetAdapter with the given service.
func NewAssetAdapter(service primary.AssetService, out io.Writer) *AssetAdapter {
	return &AssetAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new asset.
func (a *AssetAdapter) Create(ctx context.Context, req primary.CreateAssetRequest) error {
	resp, err := a.service.CreateAsset(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created asset %s: %s [%s]\n", resp.AssetID, resp.Asset.Name, resp.Asset.Status)
	return nil
}

// List lists assets with optional filters.
func (a *AssetAdapter) List(ctx context.Context, filters primary.AssetFilters) error {
	assets, err := a.service.ListAssets(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list assets: %w", err)
	}

	if len(assets) == 0 {
		fmt.Fprintln(a.out, "No assets found")
		return nil
	}

	a.printTable(assets)
	return nil
}

// Search runs the multi-strategy matcher and prints hits in stored order.
func (a *AssetAdapter) Search(ctx context.Context, query string) error {
	assets, err := a.service.SearchAssets(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(assets) == 0 {
		fmt.Fprintln(a.out, "No matches")
		return nil
	}

	a.printTable(assets)
	return nil
}

// Show displays details for a single asset, including resolved refs.
func (a *AssetAdapter) Show(ctx context.Context, assetID string) error {
	asset, err := a.service.GetAsset(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to get asset: %w", err)
	}

	fmt.Fprintf(a.out, "\nAsset:  %s\n", asset.ID)
	fmt.Fprintf(a.out, "Name:   %s\n", asset.Name)
	fmt.Fprintf(a.out, "Kind:   %s\n", asset.Kind)
	fmt.Fprintf(a.out, "Status: %s\n", asset.Status)
	fmt.Fprintf(a.out, "Phase:  %d\n", asset.Phase)
	if asset.Port != "" {
		fmt.Fprintf(a.out, "Port:   %s\n", asset.Port)
	}
	if asset.Pinned {
		fmt.Fprintln(a.out, "Pinned: yes")
	}
	if len(asset.BookRefs) > 0 {
		fmt.Fprintf(a.out, "Books:  %v\n", asset.BookRefs)
	}
	if asset.Notes != "" {
		fmt.Fprintf(a.out, "Notes:  %s\n", asset.Notes)
	}
	if asset.HealthCommand != "" {
		fmt.Fprintf(a.out, "Health: %s\n", asset.HealthCommand)
	}

	refs, err := a.service.References(ctx, assetID)
	if err == nil && (len(refs.DependsOn) > 0 || len(refs.DependedOnBy) > 0) {
		if len(refs.DependsOn) > 0 {
			fmt.Fprintln(a.out, "\nDepends on:")
			a.printRefs(refs.DependsOn)
		}
		if len(refs.DependedOnBy) > 0 {
			fmt.Fprintln(a.out, "\nDepended on by:")
			a.printRefs(refs.DependedOnBy)
		}
	}

	if len(asset.Annotations) > 0 {
		fmt.Fprintln(a.out, "\nAnnotations:")
		for _, n := range asset.Annotations {
			fmt.Fprintf(a.out, "  [%s] %s\n", n.Timestamp, n.Text)
		}
	}
	if len(asset.Documents) > 0 {
		fmt.Fprintln(a.out, "\nAttached documents:")
		for _, d := range asset.Documents {
			fmt.Fprintf(a.out, "  [%s] %s\n", d.Timestamp, d.Title)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Refs prints the resolved dependency lists for an asset.
func (a *AssetAdapter) Refs(ctx context.Context, assetID string) error {
	refs, err := a.service.References(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to resolve refs: %w", err)
	}

	fmt.Fprintln(a.out, "Depends on:")
	a.printRefs(refs.DependsOn)
	fmt.Fprintln(a.out, "Depended on by:")
	a.printRefs(refs.DependedOnBy)
	return nil
}

// Health prints the asset's health-check command verbatim, for an
// external clipboard collaborator to pick up.
func (a *AssetAdapter) Health(ctx context.Context, assetID string) error {
	cmd, err := a.service.HealthCommand(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to get health command: %w", err)
	}
	if cmd == "" {
		fmt.Fprintf(a.out, "No health command set for %s\n", assetID)
		return nil
	}
	fmt.Fprintln(a.out, cmd)
	return nil
}

func (a *AssetAdapter) printTable(assets []*primary.Asset) {
	fmt.Fprintf(a.out, "\n%-10s %-14s %-22s %-6s %s\n", "ID", "KIND", "STATUS", "PHASE", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, asset := range assets {
		pin := ""
		if asset.Pinned {
			pin = " *"
		}
		fmt.Fprintf(a.out, "%-10s %-14s %-22s %-6d %s%s\n",
			asset.ID, asset.Kind, asset.Status, asset.Phase, asset.Name, pin)
	}
	fmt.Fprintln(a.out)
}

func (a *AssetAdapter) printRefs(links []primary.RefLink) {
	if len(links) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for _, link := range links {
		if link.Dangling {
			fmt.Fprintf(a.out, "  - %s (dangling)\n", link.ID)
			continue
		}
		fmt.Fprintf(a.out, "  - %s: %s [%s]\n", link.ID, link.Name, link.Status)
	}
}
