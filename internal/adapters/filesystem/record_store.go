// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/bptracker/internal/ports/secondary"
)

// RecordStore implements secondary.RecordStore over a plain text file,
// one blueprint per line.
type RecordStore struct {
	path string
}

// NewRecordStore creates a new file-backed record store at path.
// The file is not touched until the first read or write.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Path returns the backing file path.
func (s *RecordStore) Path() string {
	return s.path
}

// ReadAll returns every line in the file. A missing file reads as empty.
func (s *RecordStore) ReadAll(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint store: %w", err)
	}

	content := string(data)
	if content == "" {
		return []string{}, nil
	}
	content = strings.TrimSuffix(content, "\n")

	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

// OverwriteAll replaces the file content with lines.
func (s *RecordStore) OverwriteAll(ctx context.Context, lines []string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write blueprint store: %w", err)
	}
	return nil
}

// AppendOne appends line plus a newline, creating the file if absent.
func (s *RecordStore) AppendOne(ctx context.Context, line string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open blueprint store: %w", err)
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to blueprint store: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close blueprint store: %w", err)
	}
	return nil
}

func (s *RecordStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Ensure RecordStore implements the interface
var _ secondary.RecordStore = (*RecordStore)(nil)
