package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Identifier
		wantErr bool
	}{
		{name: "namespaced", input: "minecraft:stone", want: Minecraft("stone")},
		{name: "bare path defaults namespace", input: "stone", want: Minecraft("stone")},
		{name: "custom namespace", input: "mod:gadget/part", want: Identifier{Namespace: "mod", Path: "gadget/part"}},
		{name: "empty namespace", input: ":stone", wantErr: true},
		{name: "empty path", input: "minecraft:", wantErr: true},
		{name: "extra colon", input: "a:b:c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentifier(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Namespace+":"+tt.want.Path, got.String())
		})
	}
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	type obj struct{ n int }
	r := NewRegistry[*obj]("test")
	paths := []string{"zeta", "alpha", "mid"}
	for i, p := range paths {
		r.MustRegister(Minecraft(p), &obj{n: i})
	}

	var got []string
	for id, v := range r.All() {
		got = append(got, id.Path)
		assert.Equal(t, len(got)-1, r.ID(v))
	}
	assert.Equal(t, paths, got)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []Identifier{Minecraft("zeta"), Minecraft("alpha"), Minecraft("mid")}, r.Keys())
}

func TestRegistry_LookupBothWays(t *testing.T) {
	type obj struct{ n int }
	r := NewRegistry[*obj]("test")
	a := r.MustRegister(Minecraft("a"), &obj{n: 1})

	got, ok := r.Get(Minecraft("a"))
	require.True(t, ok)
	assert.Same(t, a, got)

	id, ok := r.Key(a)
	require.True(t, ok)
	assert.Equal(t, Minecraft("a"), id)

	_, ok = r.Key(&obj{n: 1})
	assert.False(t, ok, "lookup is by identity, not by value")
	assert.Equal(t, -1, r.ID(&obj{}))
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	type obj struct{ n int }
	r := NewRegistry[*obj]("test")
	a := r.MustRegister(Minecraft("a"), &obj{})

	_, err := r.Register(Minecraft("a"), &obj{})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = r.Register(Minecraft("b"), a)
	assert.ErrorIs(t, err, ErrDuplicateValue)

	assert.Panics(t, func() { r.MustRegister(Minecraft("a"), &obj{}) })
}

func TestRegistry_DefaultSentinel(t *testing.T) {
	type obj struct{ n int }
	r := NewDefaultedRegistry[*obj]("test", Minecraft("none"))

	_, ok := r.Default()
	assert.False(t, ok, "sentinel not registered yet")

	none := r.MustRegister(Minecraft("none"), &obj{})
	other := r.MustRegister(Minecraft("other"), &obj{n: 1})

	def, ok := r.Default()
	require.True(t, ok)
	assert.Same(t, none, def)
	assert.True(t, r.IsDefault(none))
	assert.False(t, r.IsDefault(other))

	plain := NewRegistry[*obj]("plain")
	p := plain.MustRegister(Minecraft("none"), &obj{})
	assert.False(t, plain.IsDefault(p))
}

func TestIDMap(t *testing.T) {
	m := NewIDMap[string]()
	assert.Equal(t, 0, m.Add("a"))
	assert.Equal(t, 1, m.Add("b"))
	assert.Equal(t, 0, m.Add("a"))
	assert.Equal(t, 1, m.ID("b"))
	assert.Equal(t, -1, m.ID("c"))
	assert.Equal(t, 2, m.Len())
}
