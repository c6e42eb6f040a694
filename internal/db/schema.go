package db

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is recorded in schema_version for fresh databases.
const SchemaVersion = 1

// SchemaSQL is the complete schema for the technique catalog.
//
// Tests load it through GetSchemaSQL() instead of declaring their own tables.
const SchemaSQL = `
-- Catalog techniques, in the order they appeared in the STIX bundle
CREATE TABLE IF NOT EXISTS techniques (
	ordinal INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_techniques_id ON techniques(id);

-- Tactic phases per technique, ordered by position
CREATE TABLE IF NOT EXISTS technique_phases (
	technique_ordinal INTEGER NOT NULL,
	position INTEGER NOT NULL,
	phase TEXT NOT NULL,
	PRIMARY KEY (technique_ordinal, position),
	FOREIGN KEY (technique_ordinal) REFERENCES techniques(ordinal) ON DELETE CASCADE
);
`

// InitSchema creates the schema on a fresh database. Databases already at
// SchemaVersion are left alone.
func InitSchema(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var current int
	if err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	if _, err := tx.Exec(SchemaSQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return tx.Commit()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
