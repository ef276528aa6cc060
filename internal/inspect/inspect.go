// Package inspect runs JSONPath queries over emitted documents, read either
// from the JSON output tree or from the SQLite mirror.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mvp-joe/datagen/internal/storage"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// ErrDocumentNotFound indicates the named document was never emitted.
var ErrDocumentNotFound = errors.New("document not found")

// Query is a compiled JSONPath selector.
type Query struct {
	selector string
	expr     jp.Expr
}

// Compile parses a JSONPath selector such as $[?(@.id=='minecraft:stone')].states[*].id.
func Compile(selector string) (*Query, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return &Query{selector: selector, expr: x}, nil
}

// String returns the selector.
func (q *Query) String() string {
	return q.selector
}

// Apply returns every value in doc matched by the query.
func (q *Query) Apply(doc any) []any {
	return q.expr.Get(doc)
}

// DocumentPath maps a document name ("blocks" or "tags/block_tags") to its
// file under root.
func DocumentPath(root, name string) string {
	name = strings.TrimSuffix(name, ".json")
	return filepath.Join(root, filepath.FromSlash(name)+".json")
}

// LoadFile parses an emitted JSON document.
func LoadFile(root, name string) (any, error) {
	p := DocumentPath(root, name)
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
		}
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p, err)
	}
	return doc, nil
}

// LoadStored rebuilds a document's record array from the SQLite mirror.
// The group prefix of name, if any, is ignored since categories are unique.
// The mirror keeps no rows for an empty document, so unknown names load as [].
func LoadStored(ctx context.Context, r *storage.DocumentReader, name string) (any, error) {
	category := strings.TrimSuffix(path.Base(name), ".json")
	doc, err := r.ReadDocument(ctx, category)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, len(doc.Records))
	for i, rec := range doc.Records {
		v, err := oj.Parse(rec.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse record %d of %s: %w", i, category, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Format renders matches one per line, objects with sorted keys.
func Format(matches []any) string {
	var b strings.Builder
	for _, m := range matches {
		b.WriteString(oj.JSON(m, &oj.Options{Indent: 2, Sort: true}))
		b.WriteByte('\n')
	}
	return b.String()
}
