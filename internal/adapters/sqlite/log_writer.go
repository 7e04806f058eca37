package sqlite

import (
	"context"

	"github.com/example/bptracker/internal/ctxutil"
	"github.com/example/bptracker/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter using HistoryRepository.
type LogWriterAdapter struct {
	historyRepo secondary.HistoryRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(historyRepo secondary.HistoryRepository) *LogWriterAdapter {
	return &LogWriterAdapter{historyRepo: historyRepo}
}

// LogAdd logs an appended blueprint line.
func (w *LogWriterAdapter) LogAdd(ctx context.Context, item, line string) error {
	return w.writeLog(ctx, "add", item, line)
}

// LogDelete logs a removed blueprint line.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, item, line string) error {
	return w.writeLog(ctx, "delete", item, line)
}

func (w *LogWriterAdapter) writeLog(ctx context.Context, action, item, line string) error {
	return w.historyRepo.Create(ctx, &secondary.HistoryRecord{
		Action:  action,
		Item:    item,
		Line:    line,
		ActorID: ctxutil.ActorFromContext(ctx),
	})
}

// NoopLogWriter discards every entry. Used when history is disabled.
type NoopLogWriter struct{}

// LogAdd does nothing.
func (NoopLogWriter) LogAdd(ctx context.Context, item, line string) error { return nil }

// LogDelete does nothing.
func (NoopLogWriter) LogDelete(ctx context.Context, item, line string) error { return nil }

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
var _ secondary.LogWriter = NoopLogWriter{}
