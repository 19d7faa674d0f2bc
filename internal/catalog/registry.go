// Package catalog holds the static, read-only lookup tables the editor
// styles designs from: animations, fonts, particle effects, background
// effects and templates. Every catalog is built once and never mutated.
package catalog

import "fmt"

// Entry is anything stored in a Registry.
type Entry interface {
	Key() string
}

// Registry is an ordered, immutable mapping from identifier to entry.
// Order is declaration order and is what random selection indexes into.
type Registry[T Entry] struct {
	entries []T
	index   map[string]int
}

// NewRegistry builds a registry from entries in the given order. Duplicate
// identifiers are a programming error and panic.
func NewRegistry[T Entry](entries ...T) *Registry[T] {
	r := &Registry[T]{
		entries: make([]T, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		key := e.Key()
		if _, dup := r.index[key]; dup {
			panic(fmt.Sprintf("catalog: duplicate key %q", key))
		}
		r.index[key] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r
}

// Lookup returns the entry for id.
func (r *Registry[T]) Lookup(id string) (T, bool) {
	i, ok := r.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return r.entries[i], true
}

// Has reports whether id is registered.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// At returns the i-th entry in declaration order.
func (r *Registry[T]) At(i int) T {
	return r.entries[i]
}

func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// Keys returns a fresh slice of identifiers in declaration order.
func (r *Registry[T]) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key()
	}
	return keys
}

// All returns a fresh slice of entries in declaration order.
func (r *Registry[T]) All() []T {
	out := make([]T, len(r.entries))
	copy(out, r.entries)
	return out
}
