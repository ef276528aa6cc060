// Package flatten turns registry entries into ordered records.
package flatten

import (
	"fmt"
	"iter"

	"github.com/mvp-joe/datagen/internal/record"
	"go.uber.org/zap"
)

// ShapeFunc builds the record of one entry. aux carries the lookups the
// shape needs (symbol tables, other registries). A returned error skips
// only this entry.
type ShapeFunc[K, V, L any] func(key K, value V, aux L) (*record.Record, error)

// Result is the flattened output of one category.
type Result struct {
	Category string
	Records  []*record.Record
	// Skipped lists the keys of entries whose shape failed, in order.
	Skipped []string
}

// Flatten shapes every entry in iteration order. Entries whose shape fails
// are logged with their key and left out; the remaining records keep the
// iteration order.
func Flatten[K, V, L any](log *zap.Logger, category string, entries iter.Seq2[K, V], shape ShapeFunc[K, V, L], aux L) *Result {
	res := &Result{Category: category, Records: []*record.Record{}}
	for key, value := range entries {
		rec, err := shape(key, value, aux)
		if err != nil {
			k := fmt.Sprint(key)
			log.Warn("skipping entry",
				zap.String("category", category),
				zap.String("key", k),
				zap.Error(err))
			res.Skipped = append(res.Skipped, k)
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// Each flattens a nested multi-valued sub-object with the same tolerance as
// Flatten: failing items are logged under scope and dropped. The result is
// ready to be stored as a record field.
func Each[T any](log *zap.Logger, scope string, items iter.Seq[T], shape func(T) (*record.Record, error)) []any {
	out := []any{}
	i := 0
	for item := range items {
		rec, err := shape(item)
		if err != nil {
			log.Warn("skipping nested entry",
				zap.String("scope", scope),
				zap.Int("index", i),
				zap.Error(err))
		} else {
			out = append(out, rec)
		}
		i++
	}
	return out
}

// Len returns the number of records written.
func (r *Result) Len() int {
	return len(r.Records)
}
