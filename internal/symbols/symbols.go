// Package symbols recovers the declared constant names of runtime objects.
//
// A holder is a struct whose fields are the named constants of one object
// kind. Build inspects every field whose declared type is assignable to the
// target kind and records value -> name. The `symbol:"NAME"` struct tag
// overrides the field name.
package symbols

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
)

var (
	// ErrInvalidHolder indicates the holder is not a struct or a non-nil
	// pointer to one.
	ErrInvalidHolder = errors.New("invalid namespace holder")

	// ErrInaccessibleSlot indicates a candidate slot that cannot be read.
	// It means the model changed incompatibly and is fatal to the build.
	ErrInaccessibleSlot = errors.New("inaccessible holder slot")

	// ErrUnhashableSlot indicates a slot whose value cannot be used as an
	// identity key, such as an interface slot holding a struct with a slice.
	ErrUnhashableSlot = errors.New("unhashable holder slot")
)

// TagName is the struct tag that overrides a slot's symbolic name.
const TagName = "symbol"

type slot[T comparable] struct {
	name  string
	value T
}

// Table is an immutable reverse lookup from object identity to symbolic
// name.
type Table[T comparable] struct {
	names map[T]string
	slots []slot[T]
}

// Build creates the symbol table of holder for the object kind T.
// Fields of other kinds are skipped and nil slots are ignored. When two
// slots hold the same object, the later slot's name wins.
func Build[T comparable](holder any) (*Table[T], error) {
	v := reflect.ValueOf(holder)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrInvalidHolder, holder)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T is not a struct", ErrInvalidHolder, holder)
	}

	target := reflect.TypeFor[T]()
	typ := v.Type()
	table := &Table[T]{names: make(map[T]string)}

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.Type.AssignableTo(target) {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("%w: %s.%s", ErrInaccessibleSlot, typ.Name(), field.Name)
		}

		fv := v.Field(i)
		if isNil(fv) {
			continue
		}
		value, ok := fv.Interface().(T)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s holds %s", ErrInaccessibleSlot, typ.Name(), field.Name, fv.Type())
		}

		if !hashable(value) {
			return nil, fmt.Errorf("%w: %s.%s holds %T", ErrUnhashableSlot, typ.Name(), field.Name, value)
		}

		name := field.Name
		if tag := field.Tag.Get(TagName); tag != "" {
			name = tag
		}
		table.names[value] = name
		table.slots = append(table.slots, slot[T]{name: name, value: value})
	}

	return table, nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// hashable reports whether v can be used as a map key at runtime. Interface
// kinds only fail this for dynamic values that are not comparable.
func hashable(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.Comparable()
}

// Name returns the symbolic name of v. Objects without a holder slot are
// unnamed.
func (t *Table[T]) Name(v T) (string, bool) {
	if !hashable(v) {
		return "", false
	}
	name, ok := t.names[v]
	return name, ok
}

// Len returns the number of distinct named objects.
func (t *Table[T]) Len() int {
	return len(t.names)
}

// Slots iterates every named slot in declaration order, duplicates
// included.
func (t *Table[T]) Slots() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, s := range t.slots {
			if !yield(s.name, s.value) {
				return
			}
		}
	}
}
