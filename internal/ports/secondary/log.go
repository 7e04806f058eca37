package secondary

import "context"

// LogWriter defines the interface for writing audit log entries.
// Implementations extract the actor from context.
type LogWriter interface {
	// LogAdd logs that a blueprint line was appended to the store.
	LogAdd(ctx context.Context, item, line string) error

	// LogDelete logs that a blueprint line was removed from the store.
	LogDelete(ctx context.Context, item, line string) error
}
