package app

import (
	"context"
	"fmt"

	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// ReferenceServiceImpl implements the primary.ReferenceService interface.
type ReferenceServiceImpl struct {
	refRepo secondary.ReferenceRepository
}

// NewReferenceService creates a new ReferenceServiceImpl.
func NewReferenceService(refRepo secondary.ReferenceRepository) *ReferenceServiceImpl {
	return &ReferenceServiceImpl{refRepo: refRepo}
}

// Rules returns the operating rules, in stored order.
func (s *ReferenceServiceImpl) Rules(ctx context.Context) ([]primary.Rule, error) {
	entries, err := s.refRepo.Rules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	rules := make([]primary.Rule, 0, len(entries))
	for _, e := range entries {
		rules = append(rules, primary.Rule{
			Timestamp: e.Timestamp,
			Text:      e.Text,
		})
	}
	return rules, nil
}

// Commands returns the saved command templates, in stored order.
func (s *ReferenceServiceImpl) Commands(ctx context.Context) ([]primary.CommandTemplate, error) {
	entries, err := s.refRepo.Commands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load commands: %w", err)
	}

	cmds := make([]primary.CommandTemplate, 0, len(entries))
	for _, e := range entries {
		cmds = append(cmds, primary.CommandTemplate{
			Name:    e.Name,
			Command: e.Command,
			Desc:    e.Desc,
		})
	}
	return cmds, nil
}

// Ensure ReferenceServiceImpl implements the interface
var _ primary.ReferenceService = (*ReferenceServiceImpl)(nil)
