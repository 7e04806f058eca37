// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// RecordStore defines the secondary port for the flat blueprint store.
// Lines are exchanged without line terminators.
type RecordStore interface {
	// ReadAll returns every persisted line in order.
	// A store that does not exist yet reads as empty.
	ReadAll(ctx context.Context) ([]string, error)

	// OverwriteAll replaces the entire store content with lines.
	OverwriteAll(ctx context.Context, lines []string) error

	// AppendOne appends a single line, creating the store if absent.
	AppendOne(ctx context.Context, line string) error
}

// HistoryRepository defines the secondary port for audit trail persistence.
type HistoryRepository interface {
	// Create persists a new history entry and sets its ID.
	Create(ctx context.Context, entry *HistoryRecord) error

	// GetByID retrieves a history entry by its ID.
	GetByID(ctx context.Context, id int64) (*HistoryRecord, error)

	// List retrieves history entries matching the given filters, newest first.
	List(ctx context.Context, filters HistoryFilters) ([]*HistoryRecord, error)

	// PruneOlderThan deletes entries older than the given number of days.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// HistoryRecord represents an audit trail entry as stored in persistence.
type HistoryRecord struct {
	ID        int64
	Action    string // "add" or "delete"
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
