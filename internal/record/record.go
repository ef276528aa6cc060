// Package record provides the insertion-ordered JSON object every output
// document is built from. Flattened registry entries and merged auxiliary
// files are both Records.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrInvalidDocument indicates malformed JSON or a top level that is not an
// object.
var ErrInvalidDocument = errors.New("invalid JSON document")

// Record is an ordered mapping from field name to a scalar, a nested
// *Record or a []any.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// New creates an empty record.
func New() *Record {
	return &Record{fields: orderedmap.New[string, any]()}
}

// Set stores value under key. Existing keys keep their position.
func (r *Record) Set(key string, value any) *Record {
	r.fields.Set(key, value)
	return r
}

// SetOptional stores value only when ok; the field is absent otherwise.
func (r *Record) SetOptional(key string, value any, ok bool) *Record {
	if ok {
		r.fields.Set(key, value)
	}
	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	return r.fields.Get(key)
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.fields.Get(key)
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return r.fields.Len()
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving key order at every
// nesting level.
func (r *Record) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	r.fields = parsed.fields
	return nil
}

// Parse decodes a JSON object into a Record. Nested objects become
// *Record, arrays []any and numbers json.Number so they re-encode exactly
// as read.
func Parse(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: starts with %v", ErrInvalidDocument, tok)
	}

	r, err := parseObject(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidDocument)
	}
	return r, nil
}

func parseObject(dec *json.Decoder) (*Record, error) {
	r := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		value, err := parseValue(dec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		r.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return r, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		return parseObject(dec)
	case '[':
		values := []any{}
		for dec.More() {
			v, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return values, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", d)
	}
}
