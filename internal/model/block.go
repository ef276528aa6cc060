package model

import (
	"strconv"
	"strings"
)

// PropertyKind is the closed set of block state property value types.
type PropertyKind int

const (
	PropertyBool PropertyKind = iota
	PropertyInt
	PropertyEnum
)

// Property is one variant dimension of a block's state space.
type Property interface {
	// Name is the key used in block state strings (e.g. "axis").
	Name() string
	Kind() PropertyKind
	// Values returns the possible values in declaration order, typed by kind
	// (bool, int or string).
	Values() []any
}

// BoolProperty is a true/false property.
type BoolProperty struct {
	name string
}

// NewBoolProperty creates a boolean property.
func NewBoolProperty(name string) *BoolProperty {
	return &BoolProperty{name: name}
}

func (p *BoolProperty) Name() string       { return p.name }
func (p *BoolProperty) Kind() PropertyKind { return PropertyBool }
func (p *BoolProperty) Values() []any      { return []any{true, false} }

// IntProperty is an inclusive integer range property.
type IntProperty struct {
	name     string
	min, max int
}

// NewIntProperty creates an integer property over [min, max].
func NewIntProperty(name string, min, max int) *IntProperty {
	return &IntProperty{name: name, min: min, max: max}
}

func (p *IntProperty) Name() string       { return p.name }
func (p *IntProperty) Kind() PropertyKind { return PropertyInt }
func (p *IntProperty) Values() []any {
	out := make([]any, 0, max(p.max-p.min+1, 0))
	for v := p.min; v <= p.max; v++ {
		out = append(out, v)
	}
	return out
}

// EnumProperty is a property over a fixed set of named constants.
type EnumProperty struct {
	name   string
	values []string
}

// NewEnumProperty creates an enum property. Values are the constant names
// (e.g. "X", "Y", "Z").
func NewEnumProperty(name string, values ...string) *EnumProperty {
	return &EnumProperty{name: name, values: values}
}

func (p *EnumProperty) Name() string       { return p.name }
func (p *EnumProperty) Kind() PropertyKind { return PropertyEnum }
func (p *EnumProperty) Values() []any {
	out := make([]any, len(p.values))
	for i, v := range p.values {
		out[i] = v
	}
	return out
}

// FormatPropertyValue renders a property value the way block state strings
// spell it: enum constants lowercased, everything else in canonical form.
func FormatPropertyValue(p Property, v any) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case string:
		if p.Kind() == PropertyEnum {
			return strings.ToLower(val)
		}
		return val
	default:
		return ""
	}
}

// PushReaction describes how pistons interact with a material.
type PushReaction string

const (
	PushNormal   PushReaction = "NORMAL"
	PushDestroy  PushReaction = "DESTROY"
	PushBlock    PushReaction = "BLOCK"
	PushIgnore   PushReaction = "IGNORE"
	PushPushOnly PushReaction = "PUSH_ONLY"
)

// Material groups physical traits shared by many blocks.
type Material struct {
	Color         *MapColor
	PushReaction  PushReaction
	BlocksMotion  bool
	Flammable     bool
	Liquid        bool
	Replaceable   bool
	Solid         bool
	SolidBlocking bool
}

// AABB is an axis-aligned bounding box in block-local coordinates.
type AABB struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// FullCube is the unit block shape.
var FullCube = AABB{MaxX: 1, MaxY: 1, MaxZ: 1}

// String renders the box as AABB[minX, minY, minZ] -> [maxX, maxY, maxZ].
func (b AABB) String() string {
	return "AABB[" + formatDouble(b.MinX) + ", " + formatDouble(b.MinY) + ", " + formatDouble(b.MinZ) +
		"] -> [" + formatDouble(b.MaxX) + ", " + formatDouble(b.MaxY) + ", " + formatDouble(b.MaxZ) + "]"
}

// FormatShape renders a collision shape as a bracketed list of boxes.
func FormatShape(boxes []AABB) string {
	parts := make([]string, len(boxes))
	for i, b := range boxes {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatDouble(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// BlockSettings are the construction parameters of a block.
type BlockSettings struct {
	Material            *Material
	ExplosionResistance float64
	DestroyTime         float64
	Friction            float64
	SpeedFactor         float64
	JumpFactor          float64
	LightEmission       int
	Occludes            bool
	Air                 bool
	EntityBlock         bool
	// Shape is the collision shape; nil means no collision.
	Shape []AABB
}

// Block is a block type. Its possible states are the cartesian product of
// its properties' values.
type Block struct {
	BlockSettings
	properties []Property
	states     []*BlockState
}

// NewBlock creates a block and enumerates its states.
func NewBlock(settings BlockSettings, properties ...Property) *Block {
	if settings.Friction == 0 {
		settings.Friction = 0.6
	}
	if settings.SpeedFactor == 0 {
		settings.SpeedFactor = 1
	}
	if settings.JumpFactor == 0 {
		settings.JumpFactor = 1
	}
	b := &Block{BlockSettings: settings, properties: properties}
	b.states = enumerateStates(b)
	return b
}

// Properties returns the block's declared properties in order.
func (b *Block) Properties() []Property {
	return b.properties
}

// States returns every possible state.
func (b *Block) States() []*BlockState {
	return b.states
}

// DefaultState returns the first possible state, or nil when a property
// with no values leaves the block without states.
func (b *Block) DefaultState() *BlockState {
	if len(b.states) == 0 {
		return nil
	}
	return b.states[0]
}

// PropertyValue is one property assignment within a block state.
type PropertyValue struct {
	Property Property
	Value    any
}

// BlockState is one concrete combination of a block's property values.
type BlockState struct {
	Block  *Block
	Values []PropertyValue
}

// DestroySpeed returns the hardness of the state.
func (s *BlockState) DestroySpeed() float64 { return s.Block.DestroyTime }

// LightEmission returns the emitted light level.
func (s *BlockState) LightEmission() int { return s.Block.LightEmission }

// CanOcclude reports whether the state occludes neighbours.
func (s *BlockState) CanOcclude() bool { return s.Block.Occludes }

// IsAir reports whether the state is an air state.
func (s *BlockState) IsAir() bool { return s.Block.Air }

// Material returns the block's material.
func (s *BlockState) Material() *Material { return s.Block.Material }

// CollisionShape returns the collision boxes.
func (s *BlockState) CollisionShape() []AABB { return s.Block.Shape }

func enumerateStates(b *Block) []*BlockState {
	combos := [][]PropertyValue{{}}
	for _, p := range b.properties {
		var next [][]PropertyValue
		for _, combo := range combos {
			for _, v := range p.Values() {
				c := make([]PropertyValue, len(combo), len(combo)+1)
				copy(c, combo)
				next = append(next, append(c, PropertyValue{Property: p, Value: v}))
			}
		}
		combos = next
	}
	states := make([]*BlockState, len(combos))
	for i, c := range combos {
		states[i] = &BlockState{Block: b, Values: c}
	}
	return states
}
