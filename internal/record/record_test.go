package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_PreservesInsertionOrder(t *testing.T) {
	r := New().
		Set("id", "minecraft:stone").
		Set("numericalID", 1).
		Set("name", "STONE")
	r.Set("id", "minecraft:granite")

	assert.Equal(t, []string{"id", "numericalID", "name"}, r.Keys())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"minecraft:granite","numericalID":1,"name":"STONE"}`, string(data))
	assert.Equal(t, `{"id":"minecraft:granite","numericalID":1,"name":"STONE"}`, string(data))
}

func TestRecord_SetOptional(t *testing.T) {
	r := New().
		Set("id", "minecraft:apple").
		SetOptional("blockId", "minecraft:air", false).
		SetOptional("name", "APPLE", true)

	assert.False(t, r.Has("blockId"))
	assert.Equal(t, []string{"id", "name"}, r.Keys())
}

func TestParse_PreservesNestedOrder(t *testing.T) {
	input := `{"type":"minecraft:chest","pools":[{"rolls":1.0,"entries":[{"weight":2,"name":"b"}]}],"zeta":null,"alpha":true}`

	r, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"type", "pools", "zeta", "alpha"}, r.Keys())

	pools, ok := r.Get("pools")
	require.True(t, ok)
	first := pools.([]any)[0].(*Record)
	assert.Equal(t, []string{"rolls", "entries"}, first.Keys())

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(out), "numbers and key order re-encode exactly")
}

func TestParse_RejectsNonObjects(t *testing.T) {
	for _, input := range []string{`[1,2]`, `"text"`, `{"a":1} {"b":2}`, `{"a":`, ``} {
		_, err := Parse([]byte(input))
		assert.ErrorIs(t, err, ErrInvalidDocument, "input %q", input)
	}
}

func TestRecord_UnmarshalJSON(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"b":1,"a":{"d":2,"c":3}}`), &r))
	assert.Equal(t, []string{"b", "a"}, r.Keys())
}
