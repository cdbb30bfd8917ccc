// Package phase contains the pure business logic for project phases.
// This is part of the Functional Core - no I/O, only pure functions.
package phase

import "fmt"

// Status is the state of a phase. Phases use their own three-state
// lifecycle, independent of the asset status labels.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
)

// Count is the fixed number of project phases. Phase ids run 0..Count-1.
const Count = 8

// Definition is the immutable part of a phase: everything except status.
type Definition struct {
	ID        int
	Name      string
	Desc      string
	Criterion string // what must be true for the phase to count as complete
}

// catalogue is the fixed set of 8 ordered milestones. Statuses live in
// the store; only the definitions are baked in.
var catalogue = [Count]Definition{
	{0, "Inventory", "Catalogue every running service, container and external dependency", "All known infrastructure has an asset entry"},
	{1, "Health Checks", "Attach a health-check command to every service asset", "Every service asset has a working health command"},
	{2, "Dependency Map", "Record dependsOn/dependedOnBy links between assets", "No undocumented runtime dependency remains"},
	{3, "API Registration", "Register external APIs and record their credentials location", "All external APIs are REGISTERED"},
	{4, "Integration Tests", "Exercise each integration end to end", "All integrations pass their test pass"},
	{5, "Documentation", "Cross-reference assets against the runbook book codes", "Every asset carries its book refs"},
	{6, "Agent Rollout", "Deploy tracking agents to remaining hosts", "All agent assets report in"},
	{7, "Steady State", "Routine operation: triage, annotate, advance", "Dashboard reviewed weekly"},
}

// Definitions returns all phase definitions in order.
func Definitions() []Definition {
	out := make([]Definition, Count)
	copy(out[:], catalogue[:])
	return out
}

// Get returns the definition for a phase id.
func Get(id int) (Definition, error) {
	if id < 0 || id >= Count {
		return Definition{}, fmt.Errorf("phase %d out of range 0..%d", id, Count-1)
	}
	return catalogue[id], nil
}

// ValidStatus reports whether s is a phase status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusWaiting, StatusInProgress, StatusComplete:
		return true
	}
	return false
}
