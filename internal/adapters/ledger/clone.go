package ledger

import "github.com/example/opsdeck/internal/ports/secondary"

// cloneDoc deep-copies a snapshot document. Mutations always work on a
// copy so the previous snapshot stays intact until the save succeeds.
func cloneDoc(doc *secondary.SnapshotDoc) *secondary.SnapshotDoc {
	out := &secondary.SnapshotDoc{
		SchemaVersion: doc.SchemaVersion,
		Phases:        append([]secondary.PhaseRecord(nil), doc.Phases...),
		Records:       make([]*secondary.AssetRecord, len(doc.Records)),
		Errors:        append([]secondary.NoteEntry(nil), doc.Errors...),
		Learnings:     append([]secondary.NoteEntry(nil), doc.Learnings...),
		Rules:         append([]secondary.NoteEntry(nil), doc.Rules...),
		Bookkeeping:   append([]secondary.NoteEntry(nil), doc.Bookkeeping...),
		Commands:      append([]secondary.CommandEntry(nil), doc.Commands...),
		Tasks:         append([]secondary.TaskEntry(nil), doc.Tasks...),
		Captures:      append([]secondary.FileEntry(nil), doc.Captures...),
		Files:         append([]secondary.FileEntry(nil), doc.Files...),
		ChatPastes:    append([]secondary.ChatPaste(nil), doc.ChatPastes...),
		Log:           append([]secondary.LogEntry(nil), doc.Log...),
	}
	for i, rec := range doc.Records {
		out.Records[i] = cloneAsset(rec)
	}
	return out
}

// cloneAsset deep-copies one asset record, including its slices.
func cloneAsset(rec *secondary.AssetRecord) *secondary.AssetRecord {
	out := *rec
	out.CrossRefs = secondary.CrossRefs{
		BookRefs:     append([]string(nil), rec.CrossRefs.BookRefs...),
		DependsOn:    append([]string(nil), rec.CrossRefs.DependsOn...),
		DependedOnBy: append([]string(nil), rec.CrossRefs.DependedOnBy...),
	}
	out.Annotations = append([]secondary.Annotation(nil), rec.Annotations...)
	out.Documents = append([]secondary.AttachedDoc(nil), rec.Documents...)
	return &out
}
