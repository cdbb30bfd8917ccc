package app

import (
	"context"
	"fmt"

	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/ports/secondary"
)

// LogServiceImpl implements the LogService interface.
type LogServiceImpl struct {
	logRepo secondary.MutationLogRepository
}

// NewLogService creates a new LogService with injected dependencies.
func NewLogService(logRepo secondary.MutationLogRepository) *LogServiceImpl {
	return &LogServiceImpl{logRepo: logRepo}
}

// TailLog returns the most recent entries, newest first.
func (s *LogServiceImpl) TailLog(ctx context.Context, limit int) ([]*primary.LogEntry, error) {
	records, err := s.logRepo.Tail(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read mutation log: %w", err)
	}

	entries := make([]*primary.LogEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.LogEntry{
			Timestamp: r.Timestamp,
			Actor:     r.Actor,
			Message:   r.Message,
		}
	}
	return entries, nil
}

// Ensure LogServiceImpl implements the interface
var _ primary.LogService = (*LogServiceImpl)(nil)
