package app

import (
	"context"
	"fmt"

	coreasset "github.com/example/opsdeck/internal/core/asset"
	corephase "github.com/example/opsdeck/internal/core/phase"
	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// PhaseServiceImpl implements the PhaseService interface.
type PhaseServiceImpl struct {
	phaseRepo secondary.PhaseRepository
	logRepo   secondary.MutationLogRepository
}

// NewPhaseService creates a new PhaseService with injected dependencies.
func NewPhaseService(
	phaseRepo secondary.PhaseRepository,
	logRepo secondary.MutationLogRepository,
) *PhaseServiceImpl {
	return &PhaseServiceImpl{
		phaseRepo: phaseRepo,
		logRepo:   logRepo,
	}
}

// ListPhases returns all phases in order.
func (s *PhaseServiceImpl) ListPhases(ctx context.Context) ([]*primary.Phase, error) {
	records, err := s.phaseRepo.ListPhases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}

	phases := make([]*primary.Phase, len(records))
	for i, r := range records {
		phases[i] = recordToPhase(r)
	}
	return phases, nil
}

// GetPhase returns one phase by id.
func (s *PhaseServiceImpl) GetPhase(ctx context.Context, id int) (*primary.Phase, error) {
	records, err := s.phaseRepo.ListPhases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	for _, r := range records {
		if r.ID == id {
			return recordToPhase(r), nil
		}
	}
	return nil, fmt.Errorf("phase %d not found", id)
}

// SetPhaseStatus updates a phase's status.
func (s *PhaseServiceImpl) SetPhaseStatus(ctx context.Context, id int, status string) error {
	if !corephase.ValidStatus(status) {
		return fmt.Errorf("%w: unknown phase status %q", coreasset.ErrValidation, status)
	}

	if err := s.phaseRepo.SetPhaseStatus(ctx, id, status); err != nil {
		return err
	}

	entry := newLogEntry(ctx, fmt.Sprintf("phase-%d.status", id))
	if err := s.logRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append mutation log: %w", err)
	}
	return nil
}

func recordToPhase(r secondary.PhaseRecord) *primary.Phase {
	return &primary.Phase{
		ID:        r.ID,
		Name:      r.Name,
		Status:    r.Status,
		Desc:      r.Desc,
		Criterion: r.Criterion,
	}
}

// Ensure PhaseServiceImpl implements the interface
var _ primary.PhaseService = (*PhaseServiceImpl)(nil)
