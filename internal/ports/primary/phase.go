package primary

import "context"

// PhaseService defines the primary port for project phase operations.
type PhaseService interface {
	// ListPhases returns all 8 phases in order.
	ListPhases(ctx context.Context) ([]*Phase, error)

	// GetPhase returns one phase by id (0..7).
	GetPhase(ctx context.Context, id int) (*Phase, error)

	// SetPhaseStatus updates a phase's status
	// (waiting, in-progress, complete).
	SetPhaseStatus(ctx context.Context, id int, status string) error
}

// Phase is the service-layer view of a project phase.
type Phase struct {
	ID        int
	Name      string
	Status    string
	Desc      string
	Criterion string
}
