package symbols

// Test Plan for Build:
// - named slots map object identity to the field name or symbol tag
// - fields of other kinds are skipped, not errored
// - two slots holding the same object keep the last name
// - nil slots are skipped
// - an unexported candidate slot aborts the build with ErrInaccessibleSlot
// - non-struct holders are rejected with ErrInvalidHolder
// - interface kinds collect every implementing slot
// - an interface slot holding an uncomparable value fails with ErrUnhashableSlot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{ n int }

type shape interface{ sides() int }

type square struct{ size int }

func (square) sides() int { return 4 }

type triangle struct{ size int }

type polygon struct{ corners []int }

func (p polygon) sides() int { return len(p.corners) }

func (*triangle) sides() int { return 3 }

func TestBuild_NamesSlots(t *testing.T) {
	a, b := &widget{1}, &widget{2}
	holder := struct {
		Alpha *widget
		Beta  *widget `symbol:"BETA"`
		Count int
		Label string
	}{Alpha: a, Beta: b, Count: 3, Label: "x"}

	table, err := Build[*widget](&holder)
	require.NoError(t, err)

	name, ok := table.Name(a)
	require.True(t, ok)
	assert.Equal(t, "Alpha", name)

	name, ok = table.Name(b)
	require.True(t, ok)
	assert.Equal(t, "BETA", name)

	_, ok = table.Name(&widget{1})
	assert.False(t, ok, "unregistered objects are unnamed")
	assert.Equal(t, 2, table.Len())
}

func TestBuild_DuplicateSlotLastWriteWins(t *testing.T) {
	shared := &widget{}
	holder := struct {
		First  *widget
		Second *widget
	}{First: shared, Second: shared}

	table, err := Build[*widget](holder)
	require.NoError(t, err)

	name, ok := table.Name(shared)
	require.True(t, ok)
	assert.Equal(t, "Second", name)
	assert.Equal(t, 1, table.Len())

	var slots []string
	for n := range table.Slots() {
		slots = append(slots, n)
	}
	assert.Equal(t, []string{"First", "Second"}, slots)
}

func TestBuild_SkipsNilSlots(t *testing.T) {
	holder := struct {
		Present *widget
		Missing *widget
	}{Present: &widget{}}

	table, err := Build[*widget](holder)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestBuild_InaccessibleSlotIsFatal(t *testing.T) {
	holder := struct {
		Public  *widget
		private *widget
	}{Public: &widget{}, private: &widget{}}

	table, err := Build[*widget](holder)
	assert.ErrorIs(t, err, ErrInaccessibleSlot)
	assert.ErrorContains(t, err, "private")
	assert.Nil(t, table)
}

func TestBuild_UnexportedFieldOfOtherKindIsIgnored(t *testing.T) {
	holder := struct {
		Public *widget
		note   string
	}{Public: &widget{}, note: "ignored"}

	_, err := Build[*widget](holder)
	assert.NoError(t, err)
}

func TestBuild_InvalidHolder(t *testing.T) {
	tests := []struct {
		name   string
		holder any
	}{
		{name: "nil pointer", holder: (*struct{ A *widget })(nil)},
		{name: "map", holder: map[string]*widget{}},
		{name: "scalar", holder: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build[*widget](tt.holder)
			assert.ErrorIs(t, err, ErrInvalidHolder)
		})
	}
}

func TestBuild_InterfaceKind(t *testing.T) {
	tri := &triangle{size: 1}
	holder := struct {
		Square   square
		Triangle *triangle
		Other    *widget
	}{Square: square{size: 2}, Triangle: tri, Other: &widget{}}

	table, err := Build[shape](holder)
	require.NoError(t, err)

	name, ok := table.Name(tri)
	require.True(t, ok)
	assert.Equal(t, "Triangle", name)

	name, ok = table.Name(square{size: 2})
	require.True(t, ok)
	assert.Equal(t, "Square", name)
	assert.Equal(t, 2, table.Len())
}

func TestBuild_UnhashableInterfaceSlot(t *testing.T) {
	holder := struct {
		Square  square
		Polygon shape
	}{Square: square{size: 1}, Polygon: polygon{corners: []int{1, 2, 3, 4, 5}}}

	_, err := Build[shape](holder)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnhashableSlot)
	assert.Contains(t, err.Error(), "Polygon")

	// Lookups with an uncomparable value are unnamed rather than a panic
	table, err := Build[shape](struct{ Square square }{Square: square{size: 1}})
	require.NoError(t, err)
	_, ok := table.Name(polygon{corners: []int{1}})
	assert.False(t, ok)
}
