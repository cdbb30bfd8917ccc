package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/opsdeck/internal/ports/primary"
)

// mockAssetService implements primary.AssetService for testing
type mockAssetService struct {
	createAssetFn  func(ctx context.Context, req primary.CreateAssetRequest) (*primary.CreateAssetResponse, error)
	listAssetsFn   func(ctx context.Context, filters primary.AssetFilters) ([]*primary.Asset, error)
	searchAssetsFn func(ctx context.Context, query string) ([]*primary.Asset, error)
	getAssetFn     func(ctx context.Context, assetID string) (*primary.Asset, error)
	referencesFn   func(ctx context.Context, assetID string) (*primary.AssetRefs, error)
	healthFn       func(ctx context.Context, assetID string) (string, error)
}

func (m *mockAssetService) CreateAsset(ctx context.Context, req primary.CreateAssetRequest) (*primary.CreateAssetResponse, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(ctx, req)
	}
	return &primary.CreateAssetResponse{
		AssetID: "SVC-001",
		Asset:   &primary.Asset{ID: "SVC-001", Name: req.Name, Status: "AWAITING_SCAN"},
	}, nil
}

func (m *mockAssetService) GetAsset(ctx context.Context, assetID string) (*primary.Asset, error) {
	if m.getAssetFn != nil {
		return m.getAssetFn(ctx, assetID)
	}
	return &primary.Asset{ID: assetID, Name: "Test Asset", Kind: "service", Status: "AWAITING_SCAN"}, nil
}

func (m *mockAssetService) ListAssets(ctx context.Context, filters primary.AssetFilters) ([]*primary.Asset, error) {
	if m.listAssetsFn != nil {
		return m.listAssetsFn(ctx, filters)
	}
	return []*primary.Asset{}, nil
}

func (m *mockAssetService) SearchAssets(ctx context.Context, query string) ([]*primary.Asset, error) {
	if m.searchAssetsFn != nil {
		return m.searchAssetsFn(ctx, query)
	}
	return nil, nil
}

func (m *mockAssetService) SetField(ctx context.Context, req primary.SetFieldRequest) error {
	return nil
}

func (m *mockAssetService) AdvanceStatus(ctx context.Context, assetID string) (*primary.Asset, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockAssetService) DeleteAsset(ctx context.Context, assetID string) error { return nil }
func (m *mockAssetService) PinAsset(ctx context.Context, assetID string) error    { return nil }
func (m *mockAssetService) UnpinAsset(ctx context.Context, assetID string) error  { return nil }

func (m *mockAssetService) AddRef(ctx context.Context, req primary.RefRequest) error    { return nil }
func (m *mockAssetService) RemoveRef(ctx context.Context, req primary.RefRequest) error { return nil }

func (m *mockAssetService) Annotate(ctx context.Context, assetID, text string) error { return nil }

func (m *mockAssetService) AttachDocument(ctx context.Context, req primary.AttachDocumentRequest) error {
	return nil
}

func (m *mockAssetService) References(ctx context.Context, assetID string) (*primary.AssetRefs, error) {
	if m.referencesFn != nil {
		return m.referencesFn(ctx, assetID)
	}
	return &primary.AssetRefs{}, nil
}

func (m *mockAssetService) HealthCommand(ctx context.Context, assetID string) (string, error) {
	if m.healthFn != nil {
		return m.healthFn(ctx, assetID)
	}
	return "", nil
}

func TestAdapterCreate(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAssetAdapter(&mockAssetService{}, &buf)

	err := adapter.Create(context.Background(), primary.CreateAssetRequest{
		Name: "API Gateway",
		Kind: "service",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "✓ Created asset SVC-001") {
		t.Errorf("output = %q, want creation confirmation", out)
	}
	if !strings.Contains(out, "AWAITING_SCAN") {
		t.Errorf("output = %q, want the initial status shown", out)
	}
}

func TestAdapterCreateError(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAssetAdapter(&mockAssetService{
		createAssetFn: func(ctx context.Context, req primary.CreateAssetRequest) (*primary.CreateAssetResponse, error) {
			return nil, errors.New("duplicate asset id")
		},
	}, &buf)

	err := adapter.Create(context.Background(), primary.CreateAssetRequest{Name: "x", Kind: "service"})
	if err == nil {
		t.Fatal("Create error = nil, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing on failure", buf.String())
	}
}

func TestAdapterListEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAssetAdapter(&mockAssetService{}, &buf)

	if err := adapter.List(context.Background(), primary.AssetFilters{Phase: -1}); err != nil {
		t.Fatalf("List error = %v", err)
	}
	if !strings.Contains(buf.String(), "No assets found") {
		t.Errorf("output = %q, want empty-store message", buf.String())
	}
}

func TestAdapterListTable(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAssetAdapter(&mockAssetService{
		listAssetsFn: func(ctx context.Context, filters primary.AssetFilters) ([]*primary.Asset, error) {
			return []*primary.Asset{
				{ID: "SVC-001", Name: "API Gateway", Kind: "service", Status: "IN_PROGRESS", Phase: 0},
				{ID: "PLT-001", Name: "Staging Cluster", Kind: "platform", Status: "WAITING", Phase: 2, Pinned: true},
			}, nil
		},
	}, &buf)

	if err := adapter.List(context.Background(), primary.AssetFilters{Phase: -1}); err != nil {
		t.Fatalf("List error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"SVC-001", "API Gateway", "PLT-001", "Staging Cluster *"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Stored order is preserved top to bottom
	if strings.Index(out, "SVC-001") > strings.Index(out, "PLT-001") {
		t.Error("list output reordered the assets")
	}
}

func TestAdapterSearchNoMatches(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAssetAdapter(&mockAssetService{}, &buf)

	if err := adapter.Search(context.Background(), "nothing"); err != nil {
		t.Fatalf("Search error = %v", err)
	}
	if !strings.Contains(buf.String(), "No matches") {
		t.Errorf("output = %q, want no-matches message", buf.String())
	}
}

func TestAdapterShowRendersRefs(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAssetAdapter(&mockAssetService{
		getAssetFn: func(ctx context.Context, assetID string) (*primary.Asset, error) {
			return &primary.Asset{
				ID: assetID, Name: "API Gateway", Kind: "service",
				Status: "IN_PROGRESS", Port: "8080", Pinned: true,
			}, nil
		},
		referencesFn: func(ctx context.Context, assetID string) (*primary.AssetRefs, error) {
			return &primary.AssetRefs{
				DependsOn: []primary.RefLink{
					{ID: "DBS-001", Name: "Postgres", Status: "OPEN"},
					{ID: "CTR-404", Dangling: true},
				},
			}, nil
		},
	}, &buf)

	if err := adapter.Show(context.Background(), "SVC-001"); err != nil {
		t.Fatalf("Show error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"SVC-001", "API Gateway", "8080", "Pinned: yes", "DBS-001: Postgres [OPEN]", "CTR-404 (dangling)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAdapterHealth(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAssetAdapter(&mockAssetService{
		healthFn: func(ctx context.Context, assetID string) (string, error) {
			return "pg_isready -h localhost", nil
		},
	}, &buf)

	if err := adapter.Health(context.Background(), "DBS-001"); err != nil {
		t.Fatalf("Health error = %v", err)
	}
	if buf.String() != "pg_isready -h localhost\n" {
		t.Errorf("output = %q, want the verbatim command", buf.String())
	}
}

func TestAdapterHealthUnset(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewAssetAdapter(&mockAssetService{}, &buf)

	if err := adapter.Health(context.Background(), "SVC-001"); err != nil {
		t.Fatalf("Health error = %v", err)
	}
	if !strings.Contains(buf.String(), "No health command set") {
		t.Errorf("output = %q, want unset message", buf.String())
	}
}
