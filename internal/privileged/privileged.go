// Package privileged reads the few model fields that are not part of the
// model's public contract: attribute ranges, block entity valid blocks and
// biome special effect colors.
//
// This package is a compatibility-risk boundary. Each accessor first honors
// an explicit accessor interface the model may implement and only falls
// back to reading the named unexported field reflectively. Renaming or
// retyping one of those fields breaks the fallback; every such failure
// wraps ErrPrivilegedRead and callers skip the affected entry.
package privileged

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/mvp-joe/datagen/internal/model"
)

// ErrPrivilegedRead indicates a non-public field could not be read.
var ErrPrivilegedRead = errors.New("privileged read failed")

// Range is the clamping range of a ranged attribute.
type Range struct {
	Min float64
	Max float64
}

// RangeAccessor exposes an attribute's range.
type RangeAccessor interface {
	Range() (min, max float64, ok bool)
}

// ValidBlocksAccessor exposes the blocks a block entity type attaches to.
type ValidBlocksAccessor interface {
	ValidBlocks() []*model.Block
}

// SpecialEffectsAccessor exposes a biome's render colors.
type SpecialEffectsAccessor interface {
	SpecialEffectColors() (Effects, error)
}

// Effects are a biome's special effect colors.
type Effects struct {
	FogColor             int
	WaterColor           int
	WaterFogColor        int
	SkyColor             int
	FoliageColorOverride *int
	GrassColorOverride   *int
	GrassColorModifier   string
}

// AttributeRange returns the range of a ranged attribute. ok is false for
// unbounded attributes.
func AttributeRange(attr any) (r Range, ok bool, err error) {
	if a, is := attr.(RangeAccessor); is {
		lo, hi, ok := a.Range()
		return Range{Min: lo, Max: hi}, ok, nil
	}
	if a, is := attr.(*model.Attribute); is && a != nil && !a.Ranged {
		return Range{}, false, nil
	}
	lo, err := field[float64](attr, "minValue")
	if err != nil {
		return Range{}, false, err
	}
	hi, err := field[float64](attr, "maxValue")
	if err != nil {
		return Range{}, false, err
	}
	return Range{Min: lo, Max: hi}, true, nil
}

// ValidBlocks returns the blocks a block entity type may attach to.
func ValidBlocks(bet any) ([]*model.Block, error) {
	if a, ok := bet.(ValidBlocksAccessor); ok {
		return a.ValidBlocks(), nil
	}
	return field[[]*model.Block](bet, "validBlocks")
}

// SpecialEffects returns a biome's special effect colors.
func SpecialEffects(biome any) (Effects, error) {
	if a, ok := biome.(SpecialEffectsAccessor); ok {
		return a.SpecialEffectColors()
	}
	fx, err := field[*model.BiomeSpecialEffects](biome, "effects")
	if err != nil {
		return Effects{}, err
	}
	if fx == nil {
		return Effects{}, fmt.Errorf("%w: %T has no special effects", ErrPrivilegedRead, biome)
	}

	var out Effects
	reads := []error{
		read(fx, "fogColor", &out.FogColor),
		read(fx, "waterColor", &out.WaterColor),
		read(fx, "waterFogColor", &out.WaterFogColor),
		read(fx, "skyColor", &out.SkyColor),
		read(fx, "foliageColorOverride", &out.FoliageColorOverride),
		read(fx, "grassColorOverride", &out.GrassColorOverride),
		read(fx, "grassColorModifier", &out.GrassColorModifier),
	}
	if err := errors.Join(reads...); err != nil {
		return Effects{}, err
	}
	return out, nil
}

func read[T any](obj any, name string, dst *T) error {
	v, err := field[T](obj, name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// field reads the named field of the struct obj points to, exported or not.
func field[T any](obj any, name string) (T, error) {
	var zero T
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return zero, fmt.Errorf("%w: %T is not a non-nil pointer", ErrPrivilegedRead, obj)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return zero, fmt.Errorf("%w: %T does not point to a struct", ErrPrivilegedRead, obj)
	}
	f := v.FieldByName(name)
	if !f.IsValid() {
		return zero, fmt.Errorf("%w: %s has no field %q", ErrPrivilegedRead, v.Type(), name)
	}
	f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	out, ok := f.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s.%s is %s, want %s", ErrPrivilegedRead, v.Type(), name, f.Type(), reflect.TypeFor[T]())
	}
	return out, nil
}
