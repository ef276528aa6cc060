package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// SchemaVersion is the version recorded in generator_metadata.
const SchemaVersion = "1.0"

// CreateSchema creates the documents and generator_metadata tables.
// Uses a transaction so schema creation succeeds or fails as a whole.
func CreateSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	tables := []struct {
		name string
		ddl  string
	}{
		{"documents", createDocumentsTable},
		{"generator_metadata", createGeneratorMetadataTable},
	}
	for _, table := range tables {
		if _, err := tx.Exec(table.ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %w", table.name, err)
		}
	}

	for i, idx := range indexes {
		if _, err := tx.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index %d: %w", i+1, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		"INSERT INTO generator_metadata (key, value, updated_at) VALUES ('schema_version', ?, ?)",
		SchemaVersion, now,
	); err != nil {
		return fmt.Errorf("failed to bootstrap generator_metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}
	return nil
}

// GetSchemaVersion retrieves the schema version from generator_metadata.
// Returns "0" if the table doesn't exist (new database).
func GetSchemaVersion(db *sql.DB) (string, error) {
	var tableExists int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='generator_metadata'").Scan(&tableExists)
	if err != nil {
		return "", fmt.Errorf("failed to check generator_metadata existence: %w", err)
	}
	if tableExists == 0 {
		return "0", nil
	}

	var version string
	err = db.QueryRow("SELECT value FROM generator_metadata WHERE key = 'schema_version'").Scan(&version)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("schema_version key not found in generator_metadata")
	}
	if err != nil {
		return "", fmt.Errorf("failed to query schema version: %w", err)
	}
	return version, nil
}

const createDocumentsTable = `
CREATE TABLE documents (
    category TEXT NOT NULL,               -- Output document name, e.g. blocks, block_tags
    grp TEXT NOT NULL DEFAULT '',         -- Parent group, e.g. tags, loot_tables ('' for none)
    position INTEGER NOT NULL,            -- 0-indexed position within the document
    record_key TEXT,                      -- Identifier or logical key of the record (NULL if none)
    body TEXT NOT NULL,                   -- Record as compact JSON
    PRIMARY KEY (category, position)
)
`

const createGeneratorMetadataTable = `
CREATE TABLE generator_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL              -- ISO 8601
)
`

var indexes = []string{
	"CREATE INDEX idx_documents_group ON documents(grp, category)",
	"CREATE INDEX idx_documents_key ON documents(record_key)",
}
