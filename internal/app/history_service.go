package app

import (
	"context"
	"fmt"

	"github.com/example/bptracker/internal/ports/primary"
	"github.com/example/bptracker/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	historyRepo secondary.HistoryRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(historyRepo secondary.HistoryRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{historyRepo: historyRepo}
}

// ListHistory retrieves history entries matching the given filters.
func (s *HistoryServiceImpl) ListHistory(ctx context.Context, filters primary.HistoryFilters) ([]*primary.HistoryEntry, error) {
	if filters.Action != "" && filters.Action != "add" && filters.Action != "delete" {
		return nil, fmt.Errorf("unknown action %q (want add or delete)", filters.Action)
	}

	records, err := s.historyRepo.List(ctx, secondary.HistoryFilters{
		Action: filters.Action,
		Item:   filters.Item,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.HistoryEntry{
			ID:        r.ID,
			Action:    r.Action,
			Item:      r.Item,
			Line:      r.Line,
			ActorID:   r.ActorID,
			CreatedAt: r.CreatedAt,
		}
	}
	return entries, nil
}

// PruneHistory deletes entries older than the specified number of days.
func (s *HistoryServiceImpl) PruneHistory(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays <= 0 {
		return 0, fmt.Errorf("days must be positive, got %d", olderThanDays)
	}
	return s.historyRepo.PruneOlderThan(ctx, olderThanDays)
}

// Ensure HistoryServiceImpl implements the interface.
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
