package model

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrDuplicateKey indicates an identifier registered twice in one registry.
	ErrDuplicateKey = errors.New("duplicate registry key")

	// ErrDuplicateValue indicates the same object registered under two keys.
	ErrDuplicateValue = errors.New("duplicate registry value")
)

// Registry is an ordered, uniquely keyed collection of domain objects.
// Iteration follows registration order. A defaulted registry designates one
// of its keys as the "none" sentinel.
type Registry[T comparable] struct {
	name       string
	keys       []Identifier
	byKey      map[Identifier]T
	byValue    map[T]Identifier
	ids        map[T]int
	defaultKey Identifier
	defaulted  bool
}

// NewRegistry creates an empty registry.
func NewRegistry[T comparable](name string) *Registry[T] {
	return &Registry[T]{
		name:    name,
		byKey:   make(map[Identifier]T),
		byValue: make(map[T]Identifier),
		ids:     make(map[T]int),
	}
}

// NewDefaultedRegistry creates a registry whose entry under defaultKey is the
// sentinel value for "no association".
func NewDefaultedRegistry[T comparable](name string, defaultKey Identifier) *Registry[T] {
	r := NewRegistry[T](name)
	r.defaultKey = defaultKey
	r.defaulted = true
	return r
}

// Name returns the registry name.
func (r *Registry[T]) Name() string {
	return r.name
}

// Register adds value under id.
func (r *Registry[T]) Register(id Identifier, value T) (T, error) {
	if _, ok := r.byKey[id]; ok {
		return value, fmt.Errorf("%w: %s in %s", ErrDuplicateKey, id, r.name)
	}
	if prev, ok := r.byValue[value]; ok {
		return value, fmt.Errorf("%w: %s already registered as %s in %s", ErrDuplicateValue, id, prev, r.name)
	}
	r.ids[value] = len(r.keys)
	r.keys = append(r.keys, id)
	r.byKey[id] = value
	r.byValue[value] = id
	return value, nil
}

// MustRegister is Register for static bootstrap data; it panics on error.
func (r *Registry[T]) MustRegister(id Identifier, value T) T {
	v, err := r.Register(id, value)
	if err != nil {
		panic(err)
	}
	return v
}

// Get looks up a value by identifier.
func (r *Registry[T]) Get(id Identifier) (T, bool) {
	v, ok := r.byKey[id]
	return v, ok
}

// Key returns the identifier a value is registered under.
func (r *Registry[T]) Key(value T) (Identifier, bool) {
	id, ok := r.byValue[value]
	return id, ok
}

// ID returns the numeric registration index of value, or -1.
func (r *Registry[T]) ID(value T) int {
	if id, ok := r.ids[value]; ok {
		return id
	}
	return -1
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	return len(r.keys)
}

// Keys returns a copy of the identifiers in registration order.
func (r *Registry[T]) Keys() []Identifier {
	out := make([]Identifier, len(r.keys))
	copy(out, r.keys)
	return out
}

// All iterates entries in registration order.
func (r *Registry[T]) All() iter.Seq2[Identifier, T] {
	return func(yield func(Identifier, T) bool) {
		for _, id := range r.keys {
			if !yield(id, r.byKey[id]) {
				return
			}
		}
	}
}

// Default returns the sentinel value, if the registry is defaulted and the
// sentinel has been registered.
func (r *Registry[T]) Default() (T, bool) {
	if !r.defaulted {
		var zero T
		return zero, false
	}
	v, ok := r.byKey[r.defaultKey]
	return v, ok
}

// IsDefault reports whether value is the registry's sentinel.
func (r *Registry[T]) IsDefault(value T) bool {
	if !r.defaulted {
		return false
	}
	id, ok := r.byValue[value]
	return ok && id == r.defaultKey
}

// IDMap assigns dense numeric ids to objects that are not keyed by identifier
// (block states).
type IDMap[T comparable] struct {
	ids    map[T]int
	values []T
}

// NewIDMap creates an empty id map.
func NewIDMap[T comparable]() *IDMap[T] {
	return &IDMap[T]{ids: make(map[T]int)}
}

// Add assigns the next id to value, returning the existing id if present.
func (m *IDMap[T]) Add(value T) int {
	if id, ok := m.ids[value]; ok {
		return id
	}
	id := len(m.values)
	m.ids[value] = id
	m.values = append(m.values, value)
	return id
}

// ID returns the id of value, or -1.
func (m *IDMap[T]) ID(value T) int {
	if id, ok := m.ids[value]; ok {
		return id
	}
	return -1
}

// Len returns the number of assigned ids.
func (m *IDMap[T]) Len() int {
	return len(m.values)
}
