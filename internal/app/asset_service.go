package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	coreasset "github.com/example/opsdeck/internal/core/asset"
	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// AssetServiceImpl implements the AssetService interface.
type AssetServiceImpl struct {
	assetRepo secondary.AssetRepository
	logRepo   secondary.MutationLogRepository
}

// NewAssetService creates a new AssetService with injected dependencies.
func NewAssetService(
	assetRepo secondary.AssetRepository,
	logRepo secondary.MutationLogRepository,
) *AssetServiceImpl {
	return &AssetServiceImpl{
		assetRepo: assetRepo,
		logRepo:   logRepo,
	}
}

// CreateAsset creates a new asset.
func (s *AssetServiceImpl) CreateAsset(ctx context.Context, req primary.CreateAssetRequest) (*primary.CreateAssetResponse, error) {
	kind := coreasset.Kind(req.Kind)

	// 1. Settle the id: caller-supplied, or allocated from the kind
	id := req.ID
	if id == "" {
		if !coreasset.ValidKind(req.Kind) {
			return nil, fmt.Errorf("%w: unknown kind %q", coreasset.ErrValidation, req.Kind)
		}
		next, err := s.assetRepo.NextID(ctx, kind.Code())
		if err != nil {
			return nil, fmt.Errorf("failed to allocate asset id: %w", err)
		}
		id = next
	}

	// 2. Check guards with a pre-fetched store-wide existence check
	exists, err := s.assetRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check asset id: %w", err)
	}

	guardCtx := coreasset.CreateContext{
		ID:       id,
		Name:     req.Name,
		Kind:     req.Kind,
		IDExists: exists,
	}
	if result := coreasset.CanCreateAsset(guardCtx); !result.Allowed {
		return nil, result.Error()
	}
	if result := coreasset.CanSetPhase(req.Phase); !result.Allowed {
		return nil, result.Error()
	}

	// 3. Create record with initial status from core
	now := time.Now().Format(time.RFC3339)
	record := &secondary.AssetRecord{
		ID:     id,
		Name:   req.Name,
		Kind:   req.Kind,
		Status: string(coreasset.InitialStatus(kind)),
		Phase:  req.Phase,
		Port:   req.Port,
		Notes:  req.Notes,
		CrossRefs: secondary.CrossRefs{
			BookRefs:     []string{},
			DependsOn:    []string{},
			DependedOnBy: []string{},
		},
		Annotations: []secondary.Annotation{},
		Documents:   []secondary.AttachedDoc{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.assetRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	// 4. Audit trail
	if err := s.logMutation(ctx, "create:"+id); err != nil {
		return nil, err
	}

	return &primary.CreateAssetResponse{
		AssetID: record.ID,
		Asset:   s.recordToAsset(record),
	}, nil
}

// GetAsset retrieves an asset by id.
func (s *AssetServiceImpl) GetAsset(ctx context.Context, assetID string) (*primary.Asset, error) {
	record, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return s.recordToAsset(record), nil
}

// ListAssets lists assets with optional filters, in stored order.
func (s *AssetServiceImpl) ListAssets(ctx context.Context, filters primary.AssetFilters) ([]*primary.Asset, error) {
	records, err := s.assetRepo.List(ctx, secondary.AssetFilters{
		Kind:       filters.Kind,
		Status:     filters.Status,
		Phase:      filters.Phase,
		PinnedOnly: filters.PinnedOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*primary.Asset, len(records))
	for i, r := range records {
		assets[i] = s.recordToAsset(r)
	}
	return assets, nil
}

// SearchAssets runs the multi-strategy matcher over all assets.
// Pure over (query, records): re-running the same query against the
// same store yields the same result in the same order.
func (s *AssetServiceImpl) SearchAssets(ctx context.Context, query string) ([]*primary.Asset, error) {
	q := coreasset.NormalizeQuery(query)
	if q == "" {
		return nil, nil
	}

	records, err := s.assetRepo.List(ctx, secondary.NoFilters())
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	var hits []*primary.Asset
	for _, r := range records {
		if coreasset.Match(q, haystack(r)) {
			hits = append(hits, s.recordToAsset(r))
		}
	}
	return hits, nil
}

// SetField updates a single mutable field on an asset.
func (s *AssetServiceImpl) SetField(ctx context.Context, req primary.SetFieldRequest) error {
	record, err := s.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return err
	}

	switch req.Field {
	case "name":
		record.Name = req.Value
	case "kind":
		// Kind stays mutable after creation; the id keeps its original
		// prefix, which the resolver never minds.
		if !coreasset.ValidKind(req.Value) {
			return fmt.Errorf("%w: unknown kind %q", coreasset.ErrValidation, req.Value)
		}
		record.Kind = req.Value
	case "status":
		if result := coreasset.CanSetStatus(req.Value); !result.Allowed {
			return result.Error()
		}
		record.Status = req.Value
	case "phase":
		phase, err := strconv.Atoi(req.Value)
		if err != nil {
			return fmt.Errorf("%w: phase must be a number", coreasset.ErrValidation)
		}
		if result := coreasset.CanSetPhase(phase); !result.Allowed {
			return result.Error()
		}
		record.Phase = phase
	case "port":
		record.Port = req.Value
	case "notes":
		record.Notes = req.Value
	case "health":
		record.HealthCommand = req.Value
	default:
		return fmt.Errorf("%w: unknown field %q", coreasset.ErrValidation, req.Field)
	}

	record.UpdatedAt = time.Now().Format(time.RFC3339)
	if err := s.assetRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	return s.logMutation(ctx, req.AssetID+"."+req.Field)
}

// AdvanceStatus cycles the asset's status to the next lifecycle label.
func (s *AssetServiceImpl) AdvanceStatus(ctx context.Context, assetID string) (*primary.Asset, error) {
	record, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	record.Status = string(coreasset.Advance(coreasset.Status(record.Status)))
	record.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := s.assetRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to advance status: %w", err)
	}
	if err := s.logMutation(ctx, assetID+".status"); err != nil {
		return nil, err
	}

	return s.recordToAsset(record), nil
}

// DeleteAsset deletes an asset outright. Unconditional: no referential
// integrity veto, cross-refs to the id are left dangling.
func (s *AssetServiceImpl) DeleteAsset(ctx context.Context, assetID string) error {
	if err := s.assetRepo.Delete(ctx, assetID); err != nil {
		return err
	}
	return s.logMutation(ctx, "delete:"+assetID)
}

// PinAsset pins an asset.
func (s *AssetServiceImpl) PinAsset(ctx context.Context, assetID string) error {
	if err := s.assetRepo.Pin(ctx, assetID); err != nil {
		return err
	}
	return s.logMutation(ctx, "pin:"+assetID)
}

// UnpinAsset unpins an asset.
func (s *AssetServiceImpl) UnpinAsset(ctx context.Context, assetID string) error {
	if err := s.assetRepo.Unpin(ctx, assetID); err != nil {
		return err
	}
	return s.logMutation(ctx, "unpin:"+assetID)
}

// AddRef adds a cross-reference entry. Dep targets are not validated:
// dangling ids are a tolerated state, by design.
func (s *AssetServiceImpl) AddRef(ctx context.Context, req primary.RefRequest) error {
	if req.Value == "" {
		return fmt.Errorf("%w: ref value is required", coreasset.ErrValidation)
	}

	record, err := s.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return err
	}

	list, err := refList(record, req.Kind)
	if err != nil {
		return err
	}
	for _, v := range *list {
		if v == req.Value {
			return nil // already present, no-op
		}
	}
	*list = append(*list, req.Value)

	record.UpdatedAt = time.Now().Format(time.RFC3339)
	if err := s.assetRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return s.logMutation(ctx, req.AssetID+".crossRefs")
}

// RemoveRef removes a cross-reference entry.
func (s *AssetServiceImpl) RemoveRef(ctx context.Context, req primary.RefRequest) error {
	record, err := s.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return err
	}

	list, err := refList(record, req.Kind)
	if err != nil {
		return err
	}
	kept := (*list)[:0]
	for _, v := range *list {
		if v != req.Value {
			kept = append(kept, v)
		}
	}
	*list = kept

	record.UpdatedAt = time.Now().Format(time.RFC3339)
	if err := s.assetRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return s.logMutation(ctx, req.AssetID+".crossRefs")
}

// Annotate appends an annotation, newest first. Annotations are never
// edited in place.
func (s *AssetServiceImpl) Annotate(ctx context.Context, assetID, text string) error {
	if text == "" {
		return fmt.Errorf("%w: annotation text is required", coreasset.ErrValidation)
	}

	record, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}

	now := time.Now().Format(time.RFC3339)
	record.Annotations = append([]secondary.Annotation{
		{Timestamp: now, Text: text},
	}, record.Annotations...)
	record.UpdatedAt = now

	if err := s.assetRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to annotate asset: %w", err)
	}
	return s.logMutation(ctx, "annotate:"+assetID)
}

// AttachDocument appends an attached document, newest first.
func (s *AssetServiceImpl) AttachDocument(ctx context.Context, req primary.AttachDocumentRequest) error {
	if req.Text == "" {
		return fmt.Errorf("%w: document text is required", coreasset.ErrValidation)
	}

	record, err := s.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return err
	}

	now := time.Now().Format(time.RFC3339)
	record.Documents = append([]secondary.AttachedDoc{
		{Timestamp: now, Title: req.Title, Text: req.Text},
	}, record.Documents...)
	record.UpdatedAt = now

	if err := s.assetRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to attach document: %w", err)
	}
	return s.logMutation(ctx, "attach:"+req.AssetID)
}

// References resolves the asset's dependency lists. Dangling ids come
// back flagged; resolution never fails on them.
func (s *AssetServiceImpl) References(ctx context.Context, assetID string) (*primary.AssetRefs, error) {
	record, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	refs := &primary.AssetRefs{
		DependsOn:    s.resolveRefs(ctx, record.CrossRefs.DependsOn),
		DependedOnBy: s.resolveRefs(ctx, record.CrossRefs.DependedOnBy),
	}
	return refs, nil
}

// HealthCommand returns the asset's health-check command verbatim.
func (s *AssetServiceImpl) HealthCommand(ctx context.Context, assetID string) (string, error) {
	record, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return "", err
	}
	return record.HealthCommand, nil
}

// Helper methods

func (s *AssetServiceImpl) resolveRefs(ctx context.Context, ids []string) []primary.RefLink {
	links := make([]primary.RefLink, 0, len(ids))
	for _, id := range ids {
		target, err := s.assetRepo.GetByID(ctx, id)
		if errors.Is(err, coreasset.ErrNotFound) {
			links = append(links, primary.RefLink{ID: id, Dangling: true})
			continue
		}
		if err != nil {
			links = append(links, primary.RefLink{ID: id, Dangling: true})
			continue
		}
		links = append(links, primary.RefLink{ID: id, Name: target.Name, Status: target.Status})
	}
	return links
}

func (s *AssetServiceImpl) logMutation(ctx context.Context, message string) error {
	if err := s.logRepo.Append(ctx, newLogEntry(ctx, message)); err != nil {
		return fmt.Errorf("failed to append mutation log: %w", err)
	}
	return nil
}

func (s *AssetServiceImpl) recordToAsset(r *secondary.AssetRecord) *primary.Asset {
	annotations := make([]primary.Annotation, len(r.Annotations))
	for i, a := range r.Annotations {
		annotations[i] = primary.Annotation(a)
	}
	documents := make([]primary.AttachedDoc, len(r.Documents))
	for i, d := range r.Documents {
		documents[i] = primary.AttachedDoc(d)
	}

	return &primary.Asset{
		ID:            r.ID,
		Name:          r.Name,
		Kind:          r.Kind,
		Status:        r.Status,
		Phase:         r.Phase,
		Port:          r.Port,
		BookRefs:      r.CrossRefs.BookRefs,
		DependsOn:     r.CrossRefs.DependsOn,
		DependedOnBy:  r.CrossRefs.DependedOnBy,
		Notes:         r.Notes,
		HealthCommand: r.HealthCommand,
		Pinned:        r.Pinned,
		Annotations:   annotations,
		Documents:     documents,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// refList picks the cross-reference list a RefRequest targets.
func refList(record *secondary.AssetRecord, kind primary.RefKind) (*[]string, error) {
	switch kind {
	case primary.RefBook:
		return &record.CrossRefs.BookRefs, nil
	case primary.RefDependsOn:
		return &record.CrossRefs.DependsOn, nil
	case primary.RefDependent:
		return &record.CrossRefs.DependedOnBy, nil
	default:
		return nil, fmt.Errorf("%w: unknown ref kind %q", coreasset.ErrValidation, kind)
	}
}

// haystack builds the searchable projection of a stored record.
func haystack(r *secondary.AssetRecord) coreasset.Haystack {
	h := coreasset.Haystack{
		ID:           r.ID,
		Name:         r.Name,
		Kind:         r.Kind,
		Port:         r.Port,
		Notes:        r.Notes,
		BookRefs:     r.CrossRefs.BookRefs,
		DependsOn:    r.CrossRefs.DependsOn,
		DependedOnBy: r.CrossRefs.DependedOnBy,
	}
	for _, a := range r.Annotations {
		h.Annotations = append(h.Annotations, a.Text)
	}
	for _, d := range r.Documents {
		h.DocTitles = append(h.DocTitles, d.Title)
		h.DocTexts = append(h.DocTexts, d.Text)
	}
	return h
}

// Ensure AssetServiceImpl implements the interface
var _ primary.AssetService = (*AssetServiceImpl)(nil)
