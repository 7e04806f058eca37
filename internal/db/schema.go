package db

import "database/sql"

// SchemaSQL is the complete modern schema for fresh history databases.
// This schema reflects the current state after all migrations.
//
// Tests load it through GetSchemaSQL() rather than declaring their own
// tables, so repository code referencing a missing column fails at test time.
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Blueprint history (audit trail of add/delete operations)
CREATE TABLE IF NOT EXISTS blueprint_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	action TEXT NOT NULL CHECK(action IN ('add', 'delete')),
	item TEXT NOT NULL,
	line TEXT NOT NULL,
	actor_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_blueprint_history_item ON blueprint_history(item);
CREATE INDEX IF NOT EXISTS idx_blueprint_history_created ON blueprint_history(created_at);
`

// InitSchema creates the schema on a fresh database, or runs pending
// migrations on an existing one.
func InitSchema(conn *sql.DB) error {
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(conn)
	}

	var oldTableCount int
	err = conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='blueprint_history'").Scan(&oldTableCount)
	if err != nil {
		return err
	}
	if oldTableCount > 0 {
		// Pre-versioning database - upgrade through migrations
		return RunMigrations(conn)
	}

	// Completely fresh install - create modern schema directly
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(conn); err != nil {
		return err
	}
	// Mark all migrations as applied for fresh installs
	for _, m := range migrations {
		if _, err := conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
