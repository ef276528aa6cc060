package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// DocumentInfo summarizes one stored document.
type DocumentInfo struct {
	Category string
	Group    string
	Records  int
}

// DocumentReader reads documents from a SQLite database.
// Opens database in read-only mode.
type DocumentReader struct {
	db *sql.DB
}

// NewDocumentReader opens a SQLite database for reading documents.
func NewDocumentReader(dbPath string) (*DocumentReader, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &DocumentReader{db: db}, nil
}

// ReadDocument loads the records of category in document order.
// Unknown categories yield no records.
func (r *DocumentReader) ReadDocument(ctx context.Context, category string) (*Document, error) {
	rows, err := sq.Select("grp", "record_key", "body").
		From("documents").
		Where(sq.Eq{"category": category}).
		OrderBy("position").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query document %s: %w", category, err)
	}
	defer rows.Close()

	doc := &Document{Category: category, Records: []StoredRecord{}}
	for rows.Next() {
		var (
			key  sql.NullString
			body string
		)
		if err := rows.Scan(&doc.Group, &key, &body); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		doc.Records = append(doc.Records, StoredRecord{Key: key.String, Body: []byte(body)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", category, err)
	}
	return doc, nil
}

// ListDocuments returns every stored document ordered by group and name.
func (r *DocumentReader) ListDocuments(ctx context.Context) ([]DocumentInfo, error) {
	rows, err := sq.Select("category", "grp", "COUNT(*)").
		From("documents").
		GroupBy("category", "grp").
		OrderBy("grp", "category").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var out []DocumentInfo
	for rows.Next() {
		var info DocumentInfo
		if err := rows.Scan(&info.Category, &info.Group, &info.Records); err != nil {
			return nil, fmt.Errorf("failed to scan document info: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Metadata returns a generator_metadata value.
func (r *DocumentReader) Metadata(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := sq.Select("value").
		From("generator_metadata").
		Where(sq.Eq{"key": key}).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query metadata %s: %w", key, err)
	}
	return value, true, nil
}

// Close closes the database connection.
func (r *DocumentReader) Close() error {
	return r.db.Close()
}
