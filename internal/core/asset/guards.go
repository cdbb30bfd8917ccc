package asset

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
	Err     error  // Sentinel the reason maps to (errors.Is target)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Err != nil {
		return fmt.Errorf("%w: %s", r.Err, r.Reason)
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateContext provides context for asset creation guards.
// Populated by the caller with a pre-fetched existence check.
type CreateContext struct {
	ID       string
	Name     string
	Kind     string
	IDExists bool
}

// CanCreateAsset evaluates whether an asset can be created.
// Rules: id and name are required, the kind must be known, and the id
// must be well-formed and unique across the entire store (not just
// within its kind partition).
func CanCreateAsset(ctx CreateContext) GuardResult {
	if ctx.ID == "" {
		return GuardResult{Reason: "asset id is required", Err: ErrValidation}
	}
	if ctx.Name == "" {
		return GuardResult{Reason: "asset name is required", Err: ErrValidation}
	}
	if !ValidKind(ctx.Kind) {
		return GuardResult{Reason: fmt.Sprintf("unknown kind %q", ctx.Kind), Err: ErrValidation}
	}
	if _, err := ParseID(ctx.ID); err != nil {
		return GuardResult{Reason: fmt.Sprintf("id %q does not match PREFIX-NNN", ctx.ID), Err: ErrMalformedID}
	}
	if ctx.IDExists {
		return GuardResult{Reason: fmt.Sprintf("asset %s already exists", ctx.ID), Err: ErrDuplicateID}
	}
	return GuardResult{Allowed: true}
}

// MinPhase and MaxPhase bound the project phase grouping field.
const (
	MinPhase = 0
	MaxPhase = 7
)

// CanSetPhase evaluates whether phase is a valid phase index.
func CanSetPhase(phase int) GuardResult {
	if phase < MinPhase || phase > MaxPhase {
		return GuardResult{
			Reason: fmt.Sprintf("phase %d out of range %d..%d", phase, MinPhase, MaxPhase),
			Err:    ErrValidation,
		}
	}
	return GuardResult{Allowed: true}
}

// CanSetStatus evaluates whether status is one of the lifecycle labels.
func CanSetStatus(status string) GuardResult {
	if !ValidStatus(status) {
		return GuardResult{
			Reason: fmt.Sprintf("unknown status %q", status),
			Err:    ErrValidation,
		}
	}
	return GuardResult{Allowed: true}
}
