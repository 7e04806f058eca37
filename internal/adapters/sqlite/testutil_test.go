// Package sqlite_test contains integration tests for SQLite repositories.
//
// The schema is loaded only through db.GetSchemaSQL() so tests run against
// the same tables as production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/bptracker/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedHistory inserts a history row with an explicit timestamp and returns its ID.
func seedHistory(t *testing.T, db *sql.DB, action, item, createdAt string) int64 {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO blueprint_history (action, item, line, created_at) VALUES (?, ?, ?, ?)",
		action, item, item+" | Usage: 1 | Materials: X:1 | Total: X:1", createdAt,
	)
	if err != nil {
		t.Fatalf("failed to seed history: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}
