package app

import (
	"context"
	"testing"

	"github.com/example/opsdeck/internal/ports/secondary"
)

func TestTailLog(t *testing.T) {
	logRepo := &mockLogRepository{}
	for _, msg := range []string{"create:SVC-001", "SVC-001.status", "pin:SVC-001"} {
		logRepo.Append(context.Background(), secondary.LogEntry{
			Timestamp: "2026-08-31T10:00:00Z",
			Actor:     "operator",
			Message:   msg,
		})
	}

	svc := NewLogService(logRepo)

	entries, err := svc.TailLog(context.Background(), 2)
	if err != nil {
		t.Fatalf("TailLog error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Message != "pin:SVC-001" {
		t.Errorf("newest entry = %q, want pin:SVC-001", entries[0].Message)
	}
}

func TestReferenceService(t *testing.T) {
	refRepo := &mockReferenceRepository{
		rules: []secondary.NoteEntry{
			{Timestamp: "2026-08-31T10:00:00Z", Text: "health command before leaving AWAITING_SCAN"},
		},
		commands: []secondary.CommandEntry{
			{Name: "ports", Command: "ss -tlnp", Desc: "listening ports"},
		},
	}
	svc := NewReferenceService(refRepo)

	rules, err := svc.Rules(context.Background())
	if err != nil {
		t.Fatalf("Rules error = %v", err)
	}
	if len(rules) != 1 || rules[0].Text == "" {
		t.Errorf("rules = %+v, want the stored rule", rules)
	}

	cmds, err := svc.Commands(context.Background())
	if err != nil {
		t.Fatalf("Commands error = %v", err)
	}
	if len(cmds) != 1 || cmds[0].Command != "ss -tlnp" {
		t.Errorf("commands = %+v, want the stored template", cmds)
	}
}
