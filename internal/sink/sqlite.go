package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mvp-joe/datagen/internal/storage"
)

// SQLiteSink mirrors documents into a SQLite database. Re-emitting a
// category replaces its rows.
type SQLiteSink struct {
	writer *storage.DocumentWriter
}

// NewSQLiteSink opens or creates the database at dbPath.
func NewSQLiteSink(dbPath string) (*SQLiteSink, error) {
	w, err := storage.NewDocumentWriter(dbPath)
	if err != nil {
		return nil, err
	}
	return &SQLiteSink{writer: w}, nil
}

// Emit stores each record as compact JSON alongside its key.
func (s *SQLiteSink) Emit(ctx context.Context, doc Document) error {
	stored := &storage.Document{
		Category: doc.Category,
		Group:    doc.Group,
		Records:  make([]storage.StoredRecord, 0, len(doc.Records)),
	}
	for i, rec := range doc.Records {
		body, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record %d of %s: %w", i, doc.Category, err)
		}
		stored.Records = append(stored.Records, storage.StoredRecord{
			Key:  recordKey(rec, doc.KeyField),
			Body: body,
		})
	}
	return s.writer.WriteDocument(ctx, stored)
}

// SetMetadata records run information such as the version label.
func (s *SQLiteSink) SetMetadata(ctx context.Context, key, value string) error {
	return s.writer.SetMetadata(ctx, key, value)
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.writer.Close()
}
