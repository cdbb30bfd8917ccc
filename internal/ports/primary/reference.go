package primary

import "context"

// ReferenceService defines the primary port for the auxiliary reference
// tables (operating rules, saved command templates).
type ReferenceService interface {
	// Rules returns the operating rules, in stored order.
	Rules(ctx context.Context) ([]Rule, error)

	// Commands returns the saved command templates, in stored order.
	// Bodies are surfaced verbatim for an external clipboard
	// collaborator, never executed.
	Commands(ctx context.Context) ([]CommandTemplate, error)
}

// Rule is one operating rule entry.
type Rule struct {
	Timestamp string
	Text      string
}

// CommandTemplate is one saved command template.
type CommandTemplate struct {
	Name    string
	Command string
	Desc    string
}
