package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestOpen_FreshDatabase(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "sub", "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	var version int
	if err := conn.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("schema version = %d, want %d", version, len(migrations))
	}

	if _, err := conn.Exec("INSERT INTO blueprint_history (action, item, line, actor_id) VALUES ('add', 'Fire Seed', 'x', 'me')"); err != nil {
		t.Errorf("insert into fresh schema failed: %v", err)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer second.Close()

	var count int
	if err := second.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		t.Fatalf("failed to count versions: %v", err)
	}
	if count != len(migrations) {
		t.Errorf("schema_version rows = %d, want %d", count, len(migrations))
	}
}

func TestRunMigrations_UpgradesVersionOneDatabase(t *testing.T) {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	conn.SetMaxOpenConns(1)
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := migrationV1(tx); err != nil {
		t.Fatalf("migrationV1 failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	if err := InitSchema(conn); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	if _, err := conn.Exec("INSERT INTO blueprint_history (action, item, line, actor_id) VALUES ('delete', 'Field Brew', 'y', 'me')"); err != nil {
		t.Errorf("actor_id column missing after upgrade: %v", err)
	}
}

func TestSchema_RejectsUnknownAction(t *testing.T) {
	conn, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	_, err = conn.Exec("INSERT INTO blueprint_history (action, item, line) VALUES ('edit', 'Fire Seed', 'x')")
	if err == nil {
		t.Error("expected CHECK constraint violation for action 'edit'")
	}
}
