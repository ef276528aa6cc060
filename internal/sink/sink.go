// Package sink persists output documents. Each document is an ordered
// array of records written under a category name, optionally inside a
// group directory.
package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvp-joe/datagen/internal/record"
)

// Document is one named output document.
type Document struct {
	// Category is the document name, e.g. "blocks" or "block_tags".
	Category string
	// Group is the parent directory, e.g. "tags". Empty for top-level documents.
	Group string
	// KeyField names the field holding each record's key. May be empty.
	KeyField string
	Records  []*record.Record
}

// Sink receives documents.
type Sink interface {
	// Emit persists doc, replacing any previous document of the same
	// group and category.
	Emit(ctx context.Context, doc Document) error
	Close() error
}

// Multi fans every document out to several sinks in order.
type Multi []Sink

// Emit emits doc to each sink, stopping at the first failure.
func (m Multi) Emit(ctx context.Context, doc Document) error {
	for _, s := range m {
		if err := s.Emit(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins their errors.
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// recordKey renders the key field of rec as text.
func recordKey(rec *record.Record, field string) string {
	if field == "" {
		return ""
	}
	v, ok := rec.Get(field)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
