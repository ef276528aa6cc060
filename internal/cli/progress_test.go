package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/mvp-joe/datagen/internal/extract"
	"github.com/stretchr/testify/assert"
)

// Test Plan for CLIProgressReporter:
// - Bars, generator notice and summary are all written to the given writer
// - The summary lists skipped entries, skipped files and missing categories only when present
// - A merge bar that ends short of its total is finished without panicking
// - formatNumber inserts thousand separators

func TestCLIProgressReporter(t *testing.T) {
	t.Parallel()

	t.Run("full run", func(t *testing.T) {
		t.Parallel()
		var w bytes.Buffer
		p := NewCLIProgressReporter(&w)

		p.OnFlattenStart(2)
		p.OnDocumentWritten("blocks", 10)
		p.OnDocumentWritten("items", 5)
		p.OnGeneratorStart("/tmp/1_16_5_gen_data123")
		p.OnMergeStart(8)
		p.OnDocumentWritten("block_tags", 3)
		p.OnComplete(&extract.Stats{
			Documents:         3,
			Records:           1234,
			SkippedEntries:    []string{"biomes/minecraft:the_void"},
			MissingCategories: []string{"gameplay_loot_tables"},
			Duration:          1500 * time.Millisecond,
		})

		out := w.String()
		assert.Contains(t, out, "Flattening registries")
		assert.Contains(t, out, "Running data generator in /tmp/1_16_5_gen_data123")
		assert.Contains(t, out, "Merging generated data")
		assert.Contains(t, out, "✓ Extraction complete: 1,234 records in 3 documents (1.5s)")
		assert.Contains(t, out, "Skipped entries:    1")
		assert.NotContains(t, out, "Skipped files")
		assert.Contains(t, out, "Missing categories: [gameplay_loot_tables]")
		assert.Nil(t, p.bar)
	})

	t.Run("complete without bars", func(t *testing.T) {
		t.Parallel()
		var w bytes.Buffer
		p := NewCLIProgressReporter(&w)
		p.OnDocumentWritten("blocks", 1)
		p.OnComplete(&extract.Stats{Documents: 1, Records: 1})
		assert.Contains(t, w.String(), "1 records in 1 documents")
	})
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in))
	}
}
