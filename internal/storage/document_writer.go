// Package storage mirrors output documents into a SQLite database.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// StoredRecord is one record of a stored document.
type StoredRecord struct {
	// Key is the record's identifier or logical key; empty stores NULL.
	Key  string
	Body []byte
}

// Document is an output document as stored in SQLite.
type Document struct {
	Category string
	Group    string
	Records  []StoredRecord
}

// DocumentWriter writes documents to a SQLite database.
// Uses transactions so a document is replaced as a whole.
type DocumentWriter struct {
	db *sql.DB
}

// NewDocumentWriter opens or creates a SQLite database for document storage
// and creates the schema if needed.
func NewDocumentWriter(dbPath string) (*DocumentWriter, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	version, err := GetSchemaVersion(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check schema version: %w", err)
	}

	if version == "0" {
		if err := CreateSchema(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &DocumentWriter{db: db}, nil
}

// WriteDocument replaces every stored record of doc's category with doc's
// records, keeping their order. Rewriting an unchanged document leaves the
// table unchanged.
func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *Document) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	if _, err := sq.Delete("documents").
		Where(sq.Eq{"category": doc.Category}).
		RunWith(tx).
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to clear document %s: %w", doc.Category, err)
	}

	for i, rec := range doc.Records {
		_, err := sq.Insert("documents").
			Columns("category", "grp", "position", "record_key", "body").
			Values(doc.Category, doc.Group, i, nullableString(rec.Key), string(rec.Body)).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert record %d of %s: %w", i, doc.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SetMetadata sets or updates a generator_metadata entry.
func (w *DocumentWriter) SetMetadata(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := sq.Insert("generator_metadata").
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		RunWith(w.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set metadata %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (w *DocumentWriter) Close() error {
	return w.db.Close()
}

// nullableString converts s to interface{} for database insertion.
// Returns nil for the empty string.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
