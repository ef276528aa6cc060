package storage

// Test Plan for Document Storage:
// - NewDocumentWriter creates database with schema
// - NewDocumentWriter opens existing database
// - WriteDocument stores records in document order
// - WriteDocument replaces a category's records completely
// - WriteDocument leaves other categories untouched
// - WriteDocument handles empty documents
// - Empty record keys are stored as NULL
// - SetMetadata inserts and updates values
// - DocumentReader lists documents with record counts
// - DocumentReader rejects writes (read-only mode)
// - GetSchemaVersion returns "0" for a new database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T) (*DocumentWriter, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "datagen.db")
	w, err := NewDocumentWriter(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w, dbPath
}

func newTestReader(t *testing.T, dbPath string) *DocumentReader {
	t.Helper()
	r, err := NewDocumentReader(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestNewDocumentWriter(t *testing.T) {
	t.Parallel()

	t.Run("creates database and schema", func(t *testing.T) {
		t.Parallel()
		w, _ := newTestWriter(t)

		version, err := GetSchemaVersion(w.db)
		require.NoError(t, err)
		assert.Equal(t, SchemaVersion, version)
	})

	t.Run("opens existing database", func(t *testing.T) {
		t.Parallel()
		dbPath := filepath.Join(t.TempDir(), "datagen.db")

		w1, err := NewDocumentWriter(dbPath)
		require.NoError(t, err)
		require.NoError(t, w1.Close())

		w2, err := NewDocumentWriter(dbPath)
		require.NoError(t, err)
		defer w2.Close()

		version, err := GetSchemaVersion(w2.db)
		require.NoError(t, err)
		assert.Equal(t, SchemaVersion, version)
	})
}

func TestWriteDocument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores records in order", func(t *testing.T) {
		t.Parallel()
		w, dbPath := newTestWriter(t)

		doc := &Document{
			Category: "block_tags",
			Group:    "tags",
			Records: []StoredRecord{
				{Key: "mineable/pickaxe", Body: []byte(`{"values":[]}`)},
				{Key: "mineable/axe", Body: []byte(`{"values":["minecraft:oak_log"]}`)},
			},
		}
		require.NoError(t, w.WriteDocument(ctx, doc))

		got, err := newTestReader(t, dbPath).ReadDocument(ctx, "block_tags")
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("replaces existing records", func(t *testing.T) {
		t.Parallel()
		w, dbPath := newTestWriter(t)

		first := &Document{Category: "potions", Records: []StoredRecord{
			{Key: "minecraft:empty", Body: []byte(`{}`)},
			{Key: "minecraft:water", Body: []byte(`{}`)},
			{Key: "minecraft:awkward", Body: []byte(`{}`)},
		}}
		second := &Document{Category: "potions", Records: []StoredRecord{
			{Key: "minecraft:water", Body: []byte(`{"id":"minecraft:water"}`)},
		}}
		require.NoError(t, w.WriteDocument(ctx, first))
		require.NoError(t, w.WriteDocument(ctx, second))

		got, err := newTestReader(t, dbPath).ReadDocument(ctx, "potions")
		require.NoError(t, err)
		assert.Equal(t, second.Records, got.Records)
	})

	t.Run("leaves other categories untouched", func(t *testing.T) {
		t.Parallel()
		w, dbPath := newTestWriter(t)

		require.NoError(t, w.WriteDocument(ctx, &Document{Category: "sounds", Records: []StoredRecord{{Key: "a", Body: []byte(`{}`)}}}))
		require.NoError(t, w.WriteDocument(ctx, &Document{Category: "particles", Records: []StoredRecord{{Key: "b", Body: []byte(`{}`)}}}))
		require.NoError(t, w.WriteDocument(ctx, &Document{Category: "particles", Records: []StoredRecord{}}))

		r := newTestReader(t, dbPath)
		sounds, err := r.ReadDocument(ctx, "sounds")
		require.NoError(t, err)
		assert.Len(t, sounds.Records, 1)

		particles, err := r.ReadDocument(ctx, "particles")
		require.NoError(t, err)
		assert.Empty(t, particles.Records)
	})

	t.Run("stores empty keys as NULL", func(t *testing.T) {
		t.Parallel()
		w, _ := newTestWriter(t)

		require.NoError(t, w.WriteDocument(ctx, &Document{Category: "map_colors", Records: []StoredRecord{{Body: []byte(`{"id":0}`)}}}))

		var key sql.NullString
		err := w.db.QueryRow("SELECT record_key FROM documents WHERE category = 'map_colors'").Scan(&key)
		require.NoError(t, err)
		assert.False(t, key.Valid)
	})
}

func TestSetMetadata(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	w, dbPath := newTestWriter(t)

	require.NoError(t, w.SetMetadata(ctx, "version", "1.16.5"))
	require.NoError(t, w.SetMetadata(ctx, "version", "1.17"))

	r := newTestReader(t, dbPath)
	v, ok, err := r.Metadata(ctx, "version")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.17", v)

	_, ok, err = r.Metadata(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDocumentReader(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("lists documents", func(t *testing.T) {
		t.Parallel()
		w, dbPath := newTestWriter(t)
		require.NoError(t, w.WriteDocument(ctx, &Document{Category: "blocks", Records: []StoredRecord{{Key: "minecraft:air", Body: []byte(`{}`)}, {Key: "minecraft:stone", Body: []byte(`{}`)}}}))
		require.NoError(t, w.WriteDocument(ctx, &Document{Category: "item_tags", Group: "tags", Records: []StoredRecord{{Key: "logs", Body: []byte(`{}`)}}}))

		infos, err := newTestReader(t, dbPath).ListDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, []DocumentInfo{
			{Category: "blocks", Group: "", Records: 2},
			{Category: "item_tags", Group: "tags", Records: 1},
		}, infos)
	})

	t.Run("read-only", func(t *testing.T) {
		t.Parallel()
		_, dbPath := newTestWriter(t)
		r := newTestReader(t, dbPath)

		_, err := r.db.Exec("DELETE FROM documents")
		assert.Error(t, err)
	})
}

func TestGetSchemaVersion_NewDatabase(t *testing.T) {
	t.Parallel()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer db.Close()

	version, err := GetSchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, "0", version)
}
