package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreasset "github.com/example/opsdeck/internal/core/asset"
	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// SnapshotServiceImpl implements the SnapshotService interface.
type SnapshotServiceImpl struct {
	docStore secondary.DocumentStore
	exchange secondary.SnapshotExchange
	assets   primary.AssetService
	refRepo  secondary.ReferenceRepository
	logRepo  secondary.MutationLogRepository
}

// NewSnapshotService creates a new SnapshotService with injected dependencies.
func NewSnapshotService(
	docStore secondary.DocumentStore,
	exchange secondary.SnapshotExchange,
	assets primary.AssetService,
	refRepo secondary.ReferenceRepository,
	logRepo secondary.MutationLogRepository,
) *SnapshotServiceImpl {
	return &SnapshotServiceImpl{
		docStore: docStore,
		exchange: exchange,
		assets:   assets,
		refRepo:  refRepo,
		logRepo:  logRepo,
	}
}

// Export writes the entire store to a file and returns the path.
func (s *SnapshotServiceImpl) Export(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("opsdeck-export-%s.json", time.Now().Format("2006-01-02T15-04"))
	}

	doc, err := s.docStore.Document(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read store: %w", err)
	}

	if err := s.exchange.Write(path, doc); err != nil {
		return "", fmt.Errorf("failed to export snapshot: %w", err)
	}

	return path, nil
}

// Import replaces the entire store with the document at path. Atomic:
// a parse or validation failure leaves the store untouched, never
// partially applied.
func (s *SnapshotServiceImpl) Import(ctx context.Context, path string) error {
	doc, err := s.exchange.Read(path)
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	if err := s.docStore.Replace(ctx, doc); err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	if err := s.logRepo.Append(ctx, newLogEntry(ctx, "import:"+path)); err != nil {
		return fmt.Errorf("failed to append mutation log: %w", err)
	}
	return nil
}

// Ingest processes chat pastes. A paste whose Target names an existing
// asset becomes an attached document on it; the rest land in the
// chatPastes table. Unknown targets are tolerated, not errors.
func (s *SnapshotServiceImpl) Ingest(ctx context.Context, pastes []primary.ChatPaste) (*primary.IngestResult, error) {
	result := &primary.IngestResult{}

	for _, paste := range pastes {
		if paste.Target != "" {
			title := paste.Section
			if title == "" {
				title = paste.Source
			}
			err := s.assets.AttachDocument(ctx, primary.AttachDocumentRequest{
				AssetID: paste.Target,
				Title:   title,
				Text:    paste.Text,
			})
			if err == nil {
				result.Attached++
				continue
			}
			if !errors.Is(err, coreasset.ErrNotFound) {
				return result, err
			}
			// Target names no known asset - fall through to storage.
		}

		err := s.refRepo.AppendChatPaste(ctx, secondary.ChatPaste{
			Timestamp: paste.Timestamp,
			Source:    paste.Source,
			Text:      paste.Text,
			Target:    paste.Target,
			Section:   paste.Section,
		})
		if err != nil {
			return result, fmt.Errorf("failed to store chat paste: %w", err)
		}
		result.Stored++
	}

	return result, nil
}

// Ensure SnapshotServiceImpl implements the interface
var _ primary.SnapshotService = (*SnapshotServiceImpl)(nil)
