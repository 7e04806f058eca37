package app

import (
	"context"

	"github.com/example/bptracker/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var _ secondary.RecordStore = (*mockRecordStore)(nil)
var _ secondary.LogWriter = (*mockLogWriter)(nil)
var _ secondary.HistoryRepository = (*mockHistoryRepository)(nil)

// mockRecordStore implements secondary.RecordStore in memory.
type mockRecordStore struct {
	lines        []string
	readErr      error
	overwriteErr error
	appendErr    error

	overwriteCalls int
	appendCalls    int
}

func newMockRecordStore(lines ...string) *mockRecordStore {
	return &mockRecordStore{lines: append([]string{}, lines...)}
}

func (m *mockRecordStore) ReadAll(ctx context.Context) ([]string, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return append([]string{}, m.lines...), nil
}

func (m *mockRecordStore) OverwriteAll(ctx context.Context, lines []string) error {
	m.overwriteCalls++
	if m.overwriteErr != nil {
		return m.overwriteErr
	}
	m.lines = append([]string{}, lines...)
	return nil
}

func (m *mockRecordStore) AppendOne(ctx context.Context, line string) error {
	m.appendCalls++
	if m.appendErr != nil {
		return m.appendErr
	}
	m.lines = append(m.lines, line)
	return nil
}

// mockLogWriter records audit calls.
type mockLogWriter struct {
	adds    []string
	deletes []string
	err     error
}

func (m *mockLogWriter) LogAdd(ctx context.Context, item, line string) error {
	m.adds = append(m.adds, item)
	return m.err
}

func (m *mockLogWriter) LogDelete(ctx context.Context, item, line string) error {
	m.deletes = append(m.deletes, item)
	return m.err
}

// mockHistoryRepository implements secondary.HistoryRepository for testing.
type mockHistoryRepository struct {
	records     []*secondary.HistoryRecord
	lastFilters secondary.HistoryFilters
	lastDays    int
	listErr     error
	pruneCount  int
}

func (m *mockHistoryRepository) Create(ctx context.Context, entry *secondary.HistoryRecord) error {
	entry.ID = int64(len(m.records) + 1)
	m.records = append(m.records, entry)
	return nil
}

func (m *mockHistoryRepository) GetByID(ctx context.Context, id int64) (*secondary.HistoryRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockHistoryRepository) List(ctx context.Context, filters secondary.HistoryFilters) ([]*secondary.HistoryRecord, error) {
	m.lastFilters = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockHistoryRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	m.lastDays = days
	return m.pruneCount, nil
}
