// Package keyed provides an insertion-ordered collection that enforces
// unique keys, plus the sequence indexing rules shared by every roster:
// negative positions wrap and slices clamp. It backs repositories and the
// company's department and project registries.
package keyed

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/workforce/internal/domain"
)

// List holds values in insertion order, indexed by a key derived from each
// value. Keys are unique within a List.
type List[K comparable, V any] struct {
	keyOf func(V) K
	items []V
	index map[K]int
}

// New returns an empty List that derives keys with keyOf.
func New[K comparable, V any](keyOf func(V) K) *List[K, V] {
	return &List[K, V]{
		keyOf: keyOf,
		index: make(map[K]int),
	}
}

// Add appends v. Returns domain.ErrDuplicate if v's key is already present;
// the list is unchanged in that case.
func (l *List[K, V]) Add(v V) error {
	k := l.keyOf(v)
	if _, ok := l.index[k]; ok {
		return fmt.Errorf("key %v: %w", k, domain.ErrDuplicate)
	}
	l.index[k] = len(l.items)
	l.items = append(l.items, v)
	return nil
}

// Remove deletes the value with key k and returns it. Returns
// domain.ErrNotFound if no such value exists.
func (l *List[K, V]) Remove(k K) (V, error) {
	i, ok := l.index[k]
	if !ok {
		var zero V
		return zero, fmt.Errorf("key %v: %w", k, domain.ErrNotFound)
	}

	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	delete(l.index, k)
	for j := i; j < len(l.items); j++ {
		l.index[l.keyOf(l.items[j])] = j
	}
	return v, nil
}

// Get returns the value with key k.
func (l *List[K, V]) Get(k K) (V, bool) {
	i, ok := l.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return l.items[i], true
}

// Has reports whether key k is present.
func (l *List[K, V]) Has(k K) bool {
	_, ok := l.index[k]
	return ok
}

// Len returns the number of values.
func (l *List[K, V]) Len() int {
	return len(l.items)
}

// Values returns a snapshot of all values in insertion order.
func (l *List[K, V]) Values() []V {
	return slices.Clone(l.items)
}

// At returns items[i]. Negative positions count from the end. Returns
// domain.ErrIndexOutOfRange when i is outside items.
func At[V any](items []V, i int) (V, error) {
	n := len(items)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		var zero V
		return zero, fmt.Errorf("index %d with length %d: %w", i, n, domain.ErrIndexOutOfRange)
	}
	return items[idx], nil
}

// Slice returns a copy of items[start:stop]. Negative bounds count from the
// end and out-of-range bounds are clamped, so Slice never fails.
func Slice[V any](items []V, start, stop int) []V {
	n := len(items)
	start, stop = clamp(start, n), clamp(stop, n)
	if start >= stop {
		return []V{}
	}
	return slices.Clone(items[start:stop])
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}
