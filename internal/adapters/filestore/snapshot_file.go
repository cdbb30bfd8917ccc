// Package filestore contains the JSON-file implementations of the
// snapshot store and the export/import exchange.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/opsdeck/internal/core/snapshot"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// SnapshotFile implements secondary.SnapshotStore over a plain JSON
// document on disk. The write goes through a temp file and rename so a
// crash mid-save never leaves a truncated store behind.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile creates a file-backed snapshot store at path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// Load reads the persisted document, or nil if the file does not exist.
func (s *SnapshotFile) Load(ctx context.Context) (*secondary.SnapshotDoc, error) {
	doc, err := readDoc(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return doc, err
}

// Save overwrites the file with the given document.
func (s *SnapshotFile) Save(ctx context.Context, doc *secondary.SnapshotDoc) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return writeDoc(s.path, doc)
}

// Exchange implements secondary.SnapshotExchange for export/import.
type Exchange struct{}

// NewExchange creates a new file exchange.
func NewExchange() *Exchange {
	return &Exchange{}
}

// Write serializes the document to path.
func (e *Exchange) Write(path string, doc *secondary.SnapshotDoc) error {
	return writeDoc(path, doc)
}

// Read parses a document from path. Any parse failure comes back as a
// schema mismatch so import fails closed.
func (e *Exchange) Read(path string) (*secondary.SnapshotDoc, error) {
	return readDoc(path)
}

func writeDoc(path string, doc *secondary.SnapshotDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	return nil
}

func readDoc(path string) (*secondary.SnapshotDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var doc secondary.SnapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", snapshot.ErrSchemaMismatch, err)
	}

	return &doc, nil
}

// Ensure the adapters implement their interfaces
var (
	_ secondary.SnapshotStore    = (*SnapshotFile)(nil)
	_ secondary.SnapshotExchange = (*Exchange)(nil)
)
