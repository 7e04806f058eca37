package primary

import "context"

// HistoryService defines the primary port for the add/delete audit trail.
type HistoryService interface {
	// ListHistory retrieves history entries matching the given filters.
	ListHistory(ctx context.Context, filters HistoryFilters) ([]*HistoryEntry, error)

	// PruneHistory deletes entries older than the specified number of days.
	PruneHistory(ctx context.Context, olderThanDays int) (int, error)
}

// HistoryEntry represents an audit trail entry at the port boundary.
type HistoryEntry struct {
	ID        int64
	Action    string // 'add', 'delete'
	Item      string
	Line      string
	ActorID   string
	CreatedAt string
}

// HistoryFilters contains filter options for querying history.
type HistoryFilters struct {
	Action string
	Item   string
	Limit  int
}
