// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// AssetService defines the primary port for asset operations.
// This interface documents the intended contract for asset management.
// Implementations live in the application layer, adapters in the CLI layer.
type AssetService interface {
	// CreateAsset creates a new asset. When req.ID is empty the next id
	// for the kind is allocated; a caller-supplied id is rejected if it
	// already exists anywhere in the store.
	CreateAsset(ctx context.Context, req CreateAssetRequest) (*CreateAssetResponse, error)

	// GetAsset retrieves an asset by id.
	GetAsset(ctx context.Context, assetID string) (*Asset, error)

	// ListAssets lists assets with optional filters, in stored order.
	ListAssets(ctx context.Context, filters AssetFilters) ([]*Asset, error)

	// SearchAssets runs the multi-strategy matcher over all assets.
	// Empty query means empty result; order follows stored order.
	SearchAssets(ctx context.Context, query string) ([]*Asset, error)

	// SetField updates a single mutable field on an asset.
	SetField(ctx context.Context, req SetFieldRequest) error

	// AdvanceStatus cycles the asset's status to the next lifecycle label.
	AdvanceStatus(ctx context.Context, assetID string) (*Asset, error)

	// DeleteAsset deletes an asset outright. No cascade: cross-references
	// to the deleted id are left dangling.
	DeleteAsset(ctx context.Context, assetID string) error

	// PinAsset pins an asset.
	PinAsset(ctx context.Context, assetID string) error

	// UnpinAsset unpins an asset.
	UnpinAsset(ctx context.Context, assetID string) error

	// AddRef adds a cross-reference entry (book, dep, or dependent).
	AddRef(ctx context.Context, req RefRequest) error

	// RemoveRef removes a cross-reference entry.
	RemoveRef(ctx context.Context, req RefRequest) error

	// Annotate appends an annotation to the asset's log, newest first.
	Annotate(ctx context.Context, assetID, text string) error

	// AttachDocument appends an attached document, newest first. This is
	// the integration point for chat-paste ingestion.
	AttachDocument(ctx context.Context, req AttachDocumentRequest) error

	// References resolves the asset's dependsOn/dependedOnBy lists.
	// Dangling ids come back flagged, never as errors.
	References(ctx context.Context, assetID string) (*AssetRefs, error)

	// HealthCommand returns the asset's health-check command verbatim,
	// for an external clipboard collaborator. Never executed here.
	HealthCommand(ctx context.Context, assetID string) (string, error)
}

// CreateAssetRequest contains parameters for creating an asset.
type CreateAssetRequest struct {
	ID    string // optional; allocated from the kind when empty
	Name  string
	Kind  string
	Port  string
	Notes string
	Phase int
}

// CreateAssetResponse contains the result of creating an asset.
type CreateAssetResponse struct {
	AssetID string
	Asset   *Asset
}

// SetFieldRequest updates one field. Field is one of: name, kind,
// status, phase, port, notes, health.
type SetFieldRequest struct {
	AssetID string
	Field   string
	Value   string
}

// RefKind selects which cross-reference list a RefRequest targets.
type RefKind string

const (
	RefBook      RefKind = "book"
	RefDependsOn RefKind = "depends-on"
	RefDependent RefKind = "depended-on-by"
)

// RefRequest adds or removes one cross-reference entry.
type RefRequest struct {
	AssetID string
	Kind    RefKind
	Value   string // book code or asset id
}

// AttachDocumentRequest appends an attached document to an asset.
type AttachDocumentRequest struct {
	AssetID string
	Title   string
	Text    string
}

// AssetFilters contains filter options for listing assets.
// Phase filters only when >= 0; pass -1 to disable.
type AssetFilters struct {
	Kind       string
	Status     string
	Phase      int
	PinnedOnly bool
}

// Asset is the service-layer view of an asset.
type Asset struct {
	ID            string
	Name          string
	Kind          string
	Status        string
	Phase         int
	Port          string
	BookRefs      []string
	DependsOn     []string
	DependedOnBy  []string
	Notes         string
	HealthCommand string
	Pinned        bool
	Annotations   []Annotation
	Documents     []AttachedDoc
	CreatedAt     string
	UpdatedAt     string
}

// Annotation is one annotation entry.
type Annotation struct {
	Timestamp string
	Text      string
}

// AttachedDoc is one attached document.
type AttachedDoc struct {
	Timestamp string
	Title     string
	Text      string
}

// RefLink is one resolved cross-reference.
type RefLink struct {
	ID       string
	Name     string // empty when dangling
	Status   string // empty when dangling
	Dangling bool
}

// AssetRefs is the resolved view of an asset's dependency lists.
type AssetRefs struct {
	DependsOn    []RefLink
	DependedOnBy []RefLink
}
