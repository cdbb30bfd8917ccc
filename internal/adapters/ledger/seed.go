package ledger

import (
	"time"

	"github.com/example/opsdeck/internal/core/asset"
	"github.com/example/opsdeck/internal/core/phase"
	"github.com/example/opsdeck/internal/core/snapshot"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// DefaultDoc builds the bundled catalogue used to seed a fresh store.
// Exercises the data model end to end: cross-linked services, external
// APIs awaiting registration, book refs into the runbook sections.
func DefaultDoc() *secondary.SnapshotDoc {
	now := time.Now().Format(time.RFC3339)

	phases := make([]secondary.PhaseRecord, 0, phase.Count)
	for _, def := range phase.Definitions() {
		status := phase.StatusWaiting
		if def.ID == 0 {
			status = phase.StatusInProgress
		}
		phases = append(phases, secondary.PhaseRecord{
			ID:        def.ID,
			Name:      def.Name,
			Status:    string(status),
			Desc:      def.Desc,
			Criterion: def.Criterion,
		})
	}

	assets := []*secondary.AssetRecord{
		{
			ID: "SVC-001", Name: "API Gateway", Kind: string(asset.KindService),
			Status: string(asset.StatusInProgress), Phase: 0, Port: "8080",
			HealthCommand: "curl -sf http://localhost:8080/healthz",
			CrossRefs: secondary.CrossRefs{
				BookRefs:     []string{"A1"},
				DependsOn:    []string{"SVC-002", "DBS-001"},
				DependedOnBy: []string{},
			},
			Notes: "Front door for everything; check rate limits before scaling.",
		},
		{
			ID: "SVC-002", Name: "Auth Service", Kind: string(asset.KindService),
			Status: string(asset.StatusAwaitingScan), Phase: 0, Port: "8081",
			HealthCommand: "curl -sf http://localhost:8081/healthz",
			CrossRefs: secondary.CrossRefs{
				BookRefs:     []string{"A2", "C4"},
				DependsOn:    []string{"DBS-001"},
				DependedOnBy: []string{"SVC-001"},
			},
		},
		{
			ID: "DBS-001", Name: "Postgres Primary", Kind: string(asset.KindDatabase),
			Status: string(asset.StatusOpen), Phase: 0, Port: "5432",
			HealthCommand: "pg_isready -h localhost -p 5432",
			CrossRefs: secondary.CrossRefs{
				BookRefs:     []string{"B1"},
				DependsOn:    []string{},
				DependedOnBy: []string{"SVC-001", "SVC-002"},
			},
			Notes: "Nightly base backup at 02:00 UTC.",
		},
		{
			ID: "CTR-001", Name: "Redis Cache", Kind: string(asset.KindContainer),
			Status: string(asset.StatusNotStarted), Phase: 1, Port: "6379",
			HealthCommand: "redis-cli -p 6379 ping",
			CrossRefs: secondary.CrossRefs{
				BookRefs:     []string{"B3"},
				DependsOn:    []string{},
				DependedOnBy: []string{"SVC-001"},
			},
		},
		{
			ID: "API-001", Name: "Stripe", Kind: string(asset.KindExternalAPI),
			Status: string(asset.StatusAwaitingRegistration), Phase: 3,
			CrossRefs: secondary.CrossRefs{
				BookRefs:     []string{"D1"},
				DependsOn:    []string{},
				DependedOnBy: []string{"SVC-001"},
			},
			Notes: "Keys live in the payments vault, not in env files.",
		},
		{
			ID: "INT-001", Name: "Webhook Relay", Kind: string(asset.KindIntegration),
			Status: string(asset.StatusAwaitingTest), Phase: 4,
			CrossRefs: secondary.CrossRefs{
				BookRefs:     []string{"D2"},
				DependsOn:    []string{"API-001", "SVC-001"},
				DependedOnBy: []string{},
			},
		},
		{
			ID: "AGT-001", Name: "Host Monitor Agent", Kind: string(asset.KindAgent),
			Status: string(asset.StatusNotStarted), Phase: 6,
			CrossRefs: secondary.CrossRefs{
				BookRefs:     []string{"E1"},
				DependsOn:    []string{"SVC-001"},
				DependedOnBy: []string{},
			},
		},
		{
			ID: "PLT-001", Name: "Staging Cluster", Kind: string(asset.KindPlatform),
			Status: string(asset.StatusWaiting), Phase: 2, Pinned: true,
			CrossRefs: secondary.CrossRefs{
				BookRefs:     []string{"A7"},
				DependsOn:    []string{},
				DependedOnBy: []string{"SVC-001", "SVC-002", "CTR-001"},
			},
			Notes: "Shared with the data team; coordinate restarts.",
		},
	}
	for _, a := range assets {
		a.Annotations = []secondary.Annotation{}
		a.Documents = []secondary.AttachedDoc{}
		a.CreatedAt = now
		a.UpdatedAt = now
	}

	return &secondary.SnapshotDoc{
		SchemaVersion: snapshot.SchemaVersion,
		Phases:        phases,
		Records:       assets,
		Errors:        []secondary.NoteEntry{},
		Learnings: []secondary.NoteEntry{
			{Timestamp: now, Text: "Dangling cross-refs are fine after deletes; the resolver just reports them."},
		},
		Rules: []secondary.NoteEntry{
			{Timestamp: now, Text: "Every service gets a health command before it leaves AWAITING_SCAN."},
			{Timestamp: now, Text: "Record dependsOn links at creation time, not after the incident."},
		},
		Bookkeeping: []secondary.NoteEntry{},
		Commands: []secondary.CommandEntry{
			{Name: "ports", Command: "ss -tlnp", Desc: "listening ports with owning process"},
			{Name: "tailsys", Command: "journalctl -f -n 100", Desc: "follow system log"},
		},
		Tasks:      []secondary.TaskEntry{},
		Captures:   []secondary.FileEntry{},
		Files:      []secondary.FileEntry{},
		ChatPastes: []secondary.ChatPaste{},
		Log: []secondary.LogEntry{
			{Timestamp: now, Actor: "opsdeck", Message: "seed:catalogue"},
		},
	}
}
