package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	coreasset "github.com/example/opsdeck/internal/core/asset"
	"github.com/example/opsdeck/internal/ctxutil"
	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockAssetRepository implements secondary.AssetRepository for testing.
// Records are kept in insertion order because search and list results
// must preserve stored order.
type mockAssetRepository struct {
	records   []*secondary.AssetRecord
	createErr error
	updateErr error
}

func newMockAssetRepository() *mockAssetRepository {
	return &mockAssetRepository{}
}

func (m *mockAssetRepository) Create(ctx context.Context, rec *secondary.AssetRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id string) (*secondary.AssetRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", coreasset.ErrNotFound, id)
}

func (m *mockAssetRepository) List(ctx context.Context, filters secondary.AssetFilters) ([]*secondary.AssetRecord, error) {
	var out []*secondary.AssetRecord
	for _, r := range m.records {
		if filters.Kind != "" && r.Kind != filters.Kind {
			continue
		}
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		if filters.Phase >= 0 && r.Phase != filters.Phase {
			continue
		}
		if filters.PinnedOnly && !r.Pinned {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockAssetRepository) Update(ctx context.Context, rec *secondary.AssetRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i, r := range m.records {
		if r.ID == rec.ID {
			m.records[i] = rec
			return nil
		}
	}
	return fmt.Errorf("%w: %s", coreasset.ErrNotFound, rec.ID)
}

func (m *mockAssetRepository) Delete(ctx context.Context, id string) error {
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", coreasset.ErrNotFound, id)
}

func (m *mockAssetRepository) Pin(ctx context.Context, id string) error {
	return m.setPinned(id, true)
}

func (m *mockAssetRepository) Unpin(ctx context.Context, id string) error {
	return m.setPinned(id, false)
}

func (m *mockAssetRepository) setPinned(id string, pinned bool) error {
	for _, r := range m.records {
		if r.ID == id {
			r.Pinned = pinned
			return nil
		}
	}
	return fmt.Errorf("%w: %s", coreasset.ErrNotFound, id)
}

func (m *mockAssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	for _, r := range m.records {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAssetRepository) NextID(ctx context.Context, kindCode string) (string, error) {
	maxSeq := 0
	for _, r := range m.records {
		parsed, err := coreasset.ParseID(r.ID)
		if err != nil || parsed.Code != kindCode {
			continue
		}
		if parsed.Sequence > maxSeq {
			maxSeq = parsed.Sequence
		}
	}
	return coreasset.NextID(kindCode, maxSeq), nil
}

// mockLogRepository implements secondary.MutationLogRepository,
// recording appends newest first.
type mockLogRepository struct {
	entries   []secondary.LogEntry
	appendErr error
}

func (m *mockLogRepository) Append(ctx context.Context, entry secondary.LogEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append([]secondary.LogEntry{entry}, m.entries...)
	return nil
}

func (m *mockLogRepository) Tail(ctx context.Context, limit int) ([]secondary.LogEntry, error) {
	n := len(m.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	return m.entries[:n], nil
}

func newTestAssetService() (*AssetServiceImpl, *mockAssetRepository, *mockLogRepository) {
	assetRepo := newMockAssetRepository()
	logRepo := &mockLogRepository{}
	return NewAssetService(assetRepo, logRepo), assetRepo, logRepo
}

// seedAsset creates an asset through the service and returns its id.
func seedAsset(t *testing.T, svc *AssetServiceImpl, req primary.CreateAssetRequest) string {
	t.Helper()
	resp, err := svc.CreateAsset(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateAsset(%q) error = %v", req.Name, err)
	}
	return resp.AssetID
}

// ============================================================================
// CreateAsset
// ============================================================================

func TestCreateAssetAllocatesID(t *testing.T) {
	svc, _, logRepo := newTestAssetService()

	resp, err := svc.CreateAsset(context.Background(), primary.CreateAssetRequest{
		Name: "API Gateway",
		Kind: "service",
		Port: "8080",
	})
	if err != nil {
		t.Fatalf("CreateAsset error = %v", err)
	}

	if resp.AssetID != "SVC-001" {
		t.Errorf("AssetID = %q, want SVC-001", resp.AssetID)
	}
	if resp.Asset.Status != "AWAITING_SCAN" {
		t.Errorf("Status = %q, want AWAITING_SCAN (initial status for services)", resp.Asset.Status)
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Message != "create:SVC-001" {
		t.Errorf("log = %+v, want exactly one create:SVC-001 entry", logRepo.entries)
	}
}

func TestCreateAssetSequencePerKind(t *testing.T) {
	svc, _, _ := newTestAssetService()

	seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})
	seedAsset(t, svc, primary.CreateAssetRequest{Name: "Auth", Kind: "service"})
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "Postgres", Kind: "database"})

	if id != "DBS-001" {
		t.Errorf("database id = %q, want DBS-001 (sequences are per kind)", id)
	}
}

func TestCreateAssetCallerSuppliedID(t *testing.T) {
	svc, _, _ := newTestAssetService()

	resp, err := svc.CreateAsset(context.Background(), primary.CreateAssetRequest{
		ID:   "CST-042",
		Name: "Legacy Batch",
		Kind: "custom",
	})
	if err != nil {
		t.Fatalf("CreateAsset error = %v", err)
	}
	if resp.AssetID != "CST-042" {
		t.Errorf("AssetID = %q, want CST-042", resp.AssetID)
	}
}

func TestCreateAssetInitialStatuses(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{kind: "service", want: "AWAITING_SCAN"},
		{kind: "external-api", want: "AWAITING_REGISTRATION"},
		{kind: "integration", want: "AWAITING_TEST"},
		{kind: "database", want: "OPEN"},
		{kind: "container", want: "NOT_STARTED"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			svc, _, _ := newTestAssetService()
			resp, err := svc.CreateAsset(context.Background(), primary.CreateAssetRequest{
				Name: "thing",
				Kind: tt.kind,
			})
			if err != nil {
				t.Fatalf("CreateAsset error = %v", err)
			}
			if resp.Asset.Status != tt.want {
				t.Errorf("Status = %q, want %q", resp.Asset.Status, tt.want)
			}
		})
	}
}

func TestCreateAssetGuards(t *testing.T) {
	tests := []struct {
		name    string
		req     primary.CreateAssetRequest
		wantErr error
	}{
		{
			name:    "missing name",
			req:     primary.CreateAssetRequest{Kind: "service"},
			wantErr: coreasset.ErrValidation,
		},
		{
			name:    "unknown kind",
			req:     primary.CreateAssetRequest{Name: "x", Kind: "lambda"},
			wantErr: coreasset.ErrValidation,
		},
		{
			name:    "malformed caller id",
			req:     primary.CreateAssetRequest{ID: "svc001", Name: "x", Kind: "service"},
			wantErr: coreasset.ErrMalformedID,
		},
		{
			name:    "phase out of range",
			req:     primary.CreateAssetRequest{Name: "x", Kind: "service", Phase: 8},
			wantErr: coreasset.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, logRepo := newTestAssetService()
			_, err := svc.CreateAsset(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateAsset error = %v, want errors.Is %v", err, tt.wantErr)
			}
			if len(logRepo.entries) != 0 {
				t.Errorf("rejected create still logged: %+v", logRepo.entries)
			}
		})
	}
}

func TestCreateAssetDuplicateID(t *testing.T) {
	svc, _, _ := newTestAssetService()
	seedAsset(t, svc, primary.CreateAssetRequest{ID: "SVC-001", Name: "API Gateway", Kind: "service"})

	// Uniqueness is store-wide, not per kind: a database may not claim
	// an id already held by a service
	_, err := svc.CreateAsset(context.Background(), primary.CreateAssetRequest{
		ID:   "SVC-001",
		Name: "Impostor",
		Kind: "database",
	})
	if !errors.Is(err, coreasset.ErrDuplicateID) {
		t.Errorf("CreateAsset error = %v, want ErrDuplicateID", err)
	}
}

func TestCreateAssetActorFromContext(t *testing.T) {
	svc, _, logRepo := newTestAssetService()

	ctx := ctxutil.WithActor(context.Background(), "marvin")
	if _, err := svc.CreateAsset(ctx, primary.CreateAssetRequest{Name: "x", Kind: "service"}); err != nil {
		t.Fatalf("CreateAsset error = %v", err)
	}

	if logRepo.entries[0].Actor != "marvin" {
		t.Errorf("Actor = %q, want marvin", logRepo.entries[0].Actor)
	}
}

// ============================================================================
// SearchAssets
// ============================================================================

func searchFixture(t *testing.T, svc *AssetServiceImpl) {
	t.Helper()
	seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service", Port: "8080"})
	seedAsset(t, svc, primary.CreateAssetRequest{Name: "Docker Engine", Kind: "container"})
	seedAsset(t, svc, primary.CreateAssetRequest{Name: "Postgres Primary", Kind: "database", Port: "5432"})
}

func TestSearchAssetsEmptyQuery(t *testing.T) {
	svc, _, _ := newTestAssetService()
	searchFixture(t, svc)

	for _, q := range []string{"", "   "} {
		hits, err := svc.SearchAssets(context.Background(), q)
		if err != nil {
			t.Fatalf("SearchAssets(%q) error = %v", q, err)
		}
		if len(hits) != 0 {
			t.Errorf("SearchAssets(%q) = %d hits, want 0", q, len(hits))
		}
	}
}

func TestSearchAssetsFuzzy(t *testing.T) {
	svc, _, _ := newTestAssetService()
	searchFixture(t, svc)

	hits, err := svc.SearchAssets(context.Background(), "dkr")
	if err != nil {
		t.Fatalf("SearchAssets error = %v", err)
	}
	if len(hits) != 1 || hits[0].Name != "Docker Engine" {
		t.Errorf("SearchAssets(dkr) = %+v, want [Docker Engine]", hits)
	}

	hits, err = svc.SearchAssets(context.Background(), "ekr")
	if err != nil {
		t.Fatalf("SearchAssets error = %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("SearchAssets(ekr) = %d hits, want 0 (subsequence order matters)", len(hits))
	}
}

func TestSearchAssetsRedisScenario(t *testing.T) {
	svc, repo, _ := newTestAssetService()

	// Stored order: a handful of services before the cache
	for i := 1; i <= 8; i++ {
		repo.records = append(repo.records, &secondary.AssetRecord{
			ID: fmt.Sprintf("SVC-%03d", i), Name: fmt.Sprintf("Service %d", i),
			Kind: "service", Status: "AWAITING_SCAN",
		})
	}
	repo.records = append(repo.records, &secondary.AssetRecord{
		ID: "SVC-009", Name: "Redis Cache", Kind: "service",
		Status: "AWAITING_SCAN", Port: "6379",
	})

	for _, q := range []string{"6379", "rds", "redis"} {
		hits, err := svc.SearchAssets(context.Background(), q)
		if err != nil {
			t.Fatalf("SearchAssets(%q) error = %v", q, err)
		}
		if len(hits) != 1 || hits[0].ID != "SVC-009" {
			t.Errorf("SearchAssets(%q) = %+v, want [SVC-009]", q, hits)
		}
	}
}

func TestSearchAssetsPreservesStoredOrder(t *testing.T) {
	svc, repo, _ := newTestAssetService()

	names := []string{"alpha service", "beta service", "gamma service"}
	for i, name := range names {
		repo.records = append(repo.records, &secondary.AssetRecord{
			ID: fmt.Sprintf("SVC-%03d", i+1), Name: name,
			Kind: "service", Status: "AWAITING_SCAN",
		})
	}

	hits, err := svc.SearchAssets(context.Background(), "service")
	if err != nil {
		t.Fatalf("SearchAssets error = %v", err)
	}
	if len(hits) != 3 {
		t.Fatalf("hits = %d, want 3", len(hits))
	}
	for i, name := range names {
		if hits[i].Name != name {
			t.Errorf("hits[%d] = %q, want %q (stored order, no ranking)", i, hits[i].Name, name)
		}
	}
}

// ============================================================================
// SetField / AdvanceStatus
// ============================================================================

func TestSetField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr error
	}{
		{name: "rename", field: "name", value: "Edge Gateway"},
		{name: "kind stays mutable", field: "kind", value: "platform"},
		{name: "unknown kind rejected", field: "kind", value: "lambda", wantErr: coreasset.ErrValidation},
		{name: "status", field: "status", value: "COMPLETE"},
		{name: "unknown status rejected", field: "status", value: "DONE", wantErr: coreasset.ErrValidation},
		{name: "phase", field: "phase", value: "3"},
		{name: "phase out of range", field: "phase", value: "9", wantErr: coreasset.ErrValidation},
		{name: "phase not a number", field: "phase", value: "three", wantErr: coreasset.ErrValidation},
		{name: "port", field: "port", value: "8443"},
		{name: "health", field: "health", value: "curl -sf localhost/healthz"},
		{name: "unknown field", field: "owner", value: "ops", wantErr: coreasset.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, logRepo := newTestAssetService()
			id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})
			logRepo.entries = nil

			err := svc.SetField(context.Background(), primary.SetFieldRequest{
				AssetID: id, Field: tt.field, Value: tt.value,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SetField error = %v, want errors.Is %v", err, tt.wantErr)
				}
				if len(logRepo.entries) != 0 {
					t.Error("rejected SetField still logged")
				}
				return
			}
			if err != nil {
				t.Fatalf("SetField error = %v", err)
			}

			want := id + "." + tt.field
			if len(logRepo.entries) != 1 || logRepo.entries[0].Message != want {
				t.Errorf("log = %+v, want exactly one %q entry", logRepo.entries, want)
			}
		})
	}
}

func TestAdvanceStatusCycles(t *testing.T) {
	svc, _, logRepo := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})
	logRepo.entries = nil

	// AWAITING_SCAN is the first label; one advance lands on the second
	updated, err := svc.AdvanceStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("AdvanceStatus error = %v", err)
	}
	if updated.Status != "IN_PROGRESS" {
		t.Errorf("Status = %q, want IN_PROGRESS", updated.Status)
	}

	// A full cycle returns to the start
	start := updated.Status
	labels := coreasset.Statuses()
	for i := 0; i < len(labels); i++ {
		if updated, err = svc.AdvanceStatus(context.Background(), id); err != nil {
			t.Fatalf("AdvanceStatus error = %v", err)
		}
	}
	if updated.Status != start {
		t.Errorf("Status after full cycle = %q, want %q", updated.Status, start)
	}

	if len(logRepo.entries) != len(labels)+1 {
		t.Errorf("log entries = %d, want %d (one per advance)", len(logRepo.entries), len(labels)+1)
	}
	if logRepo.entries[0].Message != id+".status" {
		t.Errorf("log message = %q, want %s.status", logRepo.entries[0].Message, id)
	}
}

// ============================================================================
// Refs / Annotations / Documents
// ============================================================================

func TestAddRefToleratesDanglingTarget(t *testing.T) {
	svc, _, _ := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})

	// SVC-404 does not exist; the link is recorded anyway
	err := svc.AddRef(context.Background(), primary.RefRequest{
		AssetID: id, Kind: primary.RefDependsOn, Value: "SVC-404",
	})
	if err != nil {
		t.Fatalf("AddRef error = %v", err)
	}

	refs, err := svc.References(context.Background(), id)
	if err != nil {
		t.Fatalf("References error = %v", err)
	}
	if len(refs.DependsOn) != 1 {
		t.Fatalf("DependsOn = %+v, want one link", refs.DependsOn)
	}
	link := refs.DependsOn[0]
	if link.ID != "SVC-404" || !link.Dangling {
		t.Errorf("link = %+v, want dangling SVC-404", link)
	}
}

func TestAddRefDeduplicates(t *testing.T) {
	svc, repo, _ := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})

	for i := 0; i < 2; i++ {
		err := svc.AddRef(context.Background(), primary.RefRequest{
			AssetID: id, Kind: primary.RefBook, Value: "A7",
		})
		if err != nil {
			t.Fatalf("AddRef error = %v", err)
		}
	}

	rec, _ := repo.GetByID(context.Background(), id)
	if len(rec.CrossRefs.BookRefs) != 1 {
		t.Errorf("BookRefs = %v, want single A7", rec.CrossRefs.BookRefs)
	}
}

func TestRemoveRef(t *testing.T) {
	svc, repo, _ := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})

	for _, v := range []string{"DBS-001", "CTR-001"} {
		if err := svc.AddRef(context.Background(), primary.RefRequest{
			AssetID: id, Kind: primary.RefDependsOn, Value: v,
		}); err != nil {
			t.Fatalf("AddRef error = %v", err)
		}
	}

	err := svc.RemoveRef(context.Background(), primary.RefRequest{
		AssetID: id, Kind: primary.RefDependsOn, Value: "DBS-001",
	})
	if err != nil {
		t.Fatalf("RemoveRef error = %v", err)
	}

	rec, _ := repo.GetByID(context.Background(), id)
	if len(rec.CrossRefs.DependsOn) != 1 || rec.CrossRefs.DependsOn[0] != "CTR-001" {
		t.Errorf("DependsOn = %v, want [CTR-001]", rec.CrossRefs.DependsOn)
	}
}

func TestReferencesResolvesLiveTargets(t *testing.T) {
	svc, _, _ := newTestAssetService()
	gw := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})
	db := seedAsset(t, svc, primary.CreateAssetRequest{Name: "Postgres", Kind: "database"})

	if err := svc.AddRef(context.Background(), primary.RefRequest{
		AssetID: gw, Kind: primary.RefDependsOn, Value: db,
	}); err != nil {
		t.Fatalf("AddRef error = %v", err)
	}

	refs, err := svc.References(context.Background(), gw)
	if err != nil {
		t.Fatalf("References error = %v", err)
	}
	link := refs.DependsOn[0]
	if link.Dangling || link.Name != "Postgres" || link.Status != "OPEN" {
		t.Errorf("link = %+v, want resolved Postgres [OPEN]", link)
	}
}

func TestAnnotateNewestFirst(t *testing.T) {
	svc, repo, _ := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})

	for _, text := range []string{"first note", "second note"} {
		if err := svc.Annotate(context.Background(), id, text); err != nil {
			t.Fatalf("Annotate error = %v", err)
		}
	}

	rec, _ := repo.GetByID(context.Background(), id)
	if len(rec.Annotations) != 2 {
		t.Fatalf("annotations = %d, want 2", len(rec.Annotations))
	}
	if rec.Annotations[0].Text != "second note" {
		t.Errorf("newest annotation = %q, want second note", rec.Annotations[0].Text)
	}
}

func TestAnnotateRequiresText(t *testing.T) {
	svc, _, _ := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})

	if err := svc.Annotate(context.Background(), id, ""); !errors.Is(err, coreasset.ErrValidation) {
		t.Errorf("Annotate error = %v, want ErrValidation", err)
	}
}

func TestAttachDocumentNewestFirst(t *testing.T) {
	svc, repo, logRepo := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})
	logRepo.entries = nil

	for _, title := range []string{"runbook", "postmortem"} {
		err := svc.AttachDocument(context.Background(), primary.AttachDocumentRequest{
			AssetID: id, Title: title, Text: "body of " + title,
		})
		if err != nil {
			t.Fatalf("AttachDocument error = %v", err)
		}
	}

	rec, _ := repo.GetByID(context.Background(), id)
	if len(rec.Documents) != 2 || rec.Documents[0].Title != "postmortem" {
		t.Errorf("documents = %+v, want postmortem first", rec.Documents)
	}
	if logRepo.entries[0].Message != "attach:"+id {
		t.Errorf("log message = %q, want attach:%s", logRepo.entries[0].Message, id)
	}
}

// ============================================================================
// Delete / Pin
// ============================================================================

func TestDeleteAsset(t *testing.T) {
	svc, _, logRepo := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})
	logRepo.entries = nil

	if err := svc.DeleteAsset(context.Background(), id); err != nil {
		t.Fatalf("DeleteAsset error = %v", err)
	}

	if _, err := svc.GetAsset(context.Background(), id); !errors.Is(err, coreasset.ErrNotFound) {
		t.Errorf("GetAsset after delete error = %v, want ErrNotFound", err)
	}
	if logRepo.entries[0].Message != "delete:"+id {
		t.Errorf("log message = %q, want delete:%s", logRepo.entries[0].Message, id)
	}
}

func TestDeleteAssetNotFound(t *testing.T) {
	svc, _, logRepo := newTestAssetService()

	err := svc.DeleteAsset(context.Background(), "SVC-404")
	if !errors.Is(err, coreasset.ErrNotFound) {
		t.Errorf("DeleteAsset error = %v, want ErrNotFound", err)
	}
	if len(logRepo.entries) != 0 {
		t.Error("failed delete still logged")
	}
}

func TestPinUnpinAsset(t *testing.T) {
	svc, repo, logRepo := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})
	logRepo.entries = nil

	if err := svc.PinAsset(context.Background(), id); err != nil {
		t.Fatalf("PinAsset error = %v", err)
	}
	rec, _ := repo.GetByID(context.Background(), id)
	if !rec.Pinned {
		t.Error("Pinned = false after PinAsset")
	}
	if logRepo.entries[0].Message != "pin:"+id {
		t.Errorf("log message = %q, want pin:%s", logRepo.entries[0].Message, id)
	}

	if err := svc.UnpinAsset(context.Background(), id); err != nil {
		t.Fatalf("UnpinAsset error = %v", err)
	}
	rec, _ = repo.GetByID(context.Background(), id)
	if rec.Pinned {
		t.Error("Pinned = true after UnpinAsset")
	}
}

func TestHealthCommand(t *testing.T) {
	svc, _, _ := newTestAssetService()
	id := seedAsset(t, svc, primary.CreateAssetRequest{Name: "API Gateway", Kind: "service"})

	if err := svc.SetField(context.Background(), primary.SetFieldRequest{
		AssetID: id, Field: "health", Value: "curl -sf localhost:8080/healthz",
	}); err != nil {
		t.Fatalf("SetField error = %v", err)
	}

	cmd, err := svc.HealthCommand(context.Background(), id)
	if err != nil {
		t.Fatalf("HealthCommand error = %v", err)
	}
	if cmd != "curl -sf localhost:8080/healthz" {
		t.Errorf("HealthCommand = %q, want the verbatim command", cmd)
	}
}
