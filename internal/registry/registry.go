// Package registry keeps named entries ordered by priority.
package registry

import (
	"slices"
	"strings"
)

// Entry is one registered item.
type Entry[T any] struct {
	Name     string
	Item     T
	Priority int
}

// Registry lists entries by descending priority; entries with equal
// priority keep their registration order. Names are case-insensitive.
type Registry[T any] struct {
	entries []Entry[T]
}

// Add registers item under name, replacing an entry with the same name.
func (r *Registry[T]) Add(name string, item T, priority int) {
	r.entries = slices.DeleteFunc(r.entries, func(e Entry[T]) bool { return strings.EqualFold(e.Name, name) })
	r.entries = append(r.entries, Entry[T]{Name: name, Item: item, Priority: priority})
	slices.SortStableFunc(r.entries, func(a, b Entry[T]) int { return b.Priority - a.Priority })
}

// Entries returns the entries in priority order, optionally restricted to
// the given names.
func (r *Registry[T]) Entries(only ...string) []Entry[T] {
	if len(only) == 0 {
		return slices.Clone(r.entries)
	}
	var out []Entry[T]
	for _, e := range r.entries {
		if slices.ContainsFunc(only, func(n string) bool { return strings.EqualFold(n, e.Name) }) {
			out = append(out, e)
		}
	}
	return out
}

// Get returns the entry registered under name.
func (r *Registry[T]) Get(name string) (Entry[T], bool) {
	for _, e := range r.entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry[T]{}, false
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int { return len(r.entries) }
