package radix

import (
	"fmt"
	"iter"
	"strings"
)

// Map is an ordered key-value map backed by a radix tree. Compared to
// a plain Go map it keeps keys sorted and answers prefix queries; the
// trade-off is slower insertion. Keys are element slices, so a string
// map is Map[byte, V] with Key[byte]("...") keys.
type Map[E Element, V any] struct {
	tree *Tree[E, V]
}

// NewMap returns an empty map.
func NewMap[E Element, V any](opts ...Option) *Map[E, V] {
	return &Map[E, V]{tree: New[E, V](opts...)}
}

// CollectMap builds a map from a sequence of key/value pairs. On
// duplicate keys the last pair wins.
func CollectMap[E Element, V any](seq iter.Seq2[Key[E], V], opts ...Option) *Map[E, V] {
	m := NewMap[E, V](opts...)
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}

// Insert stores value under key and returns the replaced value, if
// the key was already present.
func (m *Map[E, V]) Insert(key Key[E], value V) (V, bool) {
	return m.tree.Insert(key, value)
}

// Get returns the value stored under key.
func (m *Map[E, V]) Get(key Key[E]) (V, bool) {
	return m.tree.Get(key)
}

// Contains reports whether key is present.
func (m *Map[E, V]) Contains(key Key[E]) bool {
	return m.tree.Contains(key)
}

// Remove deletes key and returns the removed value, if the key was
// present.
func (m *Map[E, V]) Remove(key Key[E]) (V, bool) {
	return m.tree.Remove(key)
}

// Find returns a lazy ascending sequence of the entries whose key
// starts with prefix.
func (m *Map[E, V]) Find(prefix Key[E]) iter.Seq2[Key[E], V] {
	return func(yield func(Key[E], V) bool) {
		it := m.tree.Find(prefix)
		for {
			k, v, err := it.Next()
			if err != nil {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// All returns a lazy ascending sequence of all entries.
func (m *Map[E, V]) All() iter.Seq2[Key[E], V] {
	return m.tree.All()
}

// Keys returns a lazy ascending sequence of all keys.
func (m *Map[E, V]) Keys() iter.Seq[Key[E]] {
	return m.tree.Keys()
}

// Values returns a lazy sequence of all values, ordered by key.
func (m *Map[E, V]) Values() iter.Seq[V] {
	return m.tree.Values()
}

// Len returns the number of entries.
func (m *Map[E, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[E, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Clear removes all entries.
func (m *Map[E, V]) Clear() {
	m.tree.Clear()
}

// EqualFunc reports whether both maps hold the same keys and eq holds
// for every pair of corresponding values.
func (m *Map[E, V]) EqualFunc(other *Map[E, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	a, b := m.tree.Iterator(), other.tree.Iterator()
	for {
		ka, va, erra := a.Next()
		kb, vb, errb := b.Next()
		if erra != nil || errb != nil {
			return erra != nil && errb != nil
		}
		if compareKeys(ka, kb) != 0 || !eq(va, vb) {
			return false
		}
	}
}

// String renders the entries in key order, in the style of fmt's map
// formatting.
func (m *Map[E, V]) String() string {
	var b strings.Builder
	b.WriteString("radix.Map[")
	first := true
	m.tree.Walk(func(k Key[E], v V) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", formatKey(k), v)
		return true
	})
	b.WriteString("]")
	return b.String()
}

// formatKey prints byte keys as text and everything else as a plain
// slice.
func formatKey[E Element](k Key[E]) string {
	if bs, ok := any([]E(k)).([]byte); ok {
		return string(bs)
	}
	return fmt.Sprintf("%v", []E(k))
}
