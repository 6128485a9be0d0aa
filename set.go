package radix

import (
	"iter"
	"strings"
)

// Set is an ordered set of element-sequence keys backed by a radix
// tree. A string set is Set[byte].
type Set[E Element] struct {
	tree *Tree[E, struct{}]
}

// NewSet returns an empty set.
func NewSet[E Element](opts ...Option) *Set[E] {
	return &Set[E]{tree: New[E, struct{}](opts...)}
}

// CollectSet builds a set from a sequence of keys. Duplicates are
// absorbed.
func CollectSet[E Element](seq iter.Seq[Key[E]], opts ...Option) *Set[E] {
	s := NewSet[E](opts...)
	for k := range seq {
		s.Insert(k)
	}
	return s
}

// Insert adds key to the set, reporting whether it was not already
// present.
func (s *Set[E]) Insert(key Key[E]) bool {
	_, replaced := s.tree.Insert(key, struct{}{})
	return !replaced
}

// Contains reports whether key is in the set.
func (s *Set[E]) Contains(key Key[E]) bool {
	return s.tree.Contains(key)
}

// Remove deletes key from the set, reporting whether it was present.
func (s *Set[E]) Remove(key Key[E]) bool {
	_, removed := s.tree.Remove(key)
	return removed
}

// Find returns a lazy ascending sequence of the keys starting with
// prefix.
func (s *Set[E]) Find(prefix Key[E]) iter.Seq[Key[E]] {
	return func(yield func(Key[E]) bool) {
		it := s.tree.Find(prefix)
		for {
			k, _, err := it.Next()
			if err != nil {
				return
			}
			if !yield(k) {
				return
			}
		}
	}
}

// All returns a lazy ascending sequence of all keys.
func (s *Set[E]) All() iter.Seq[Key[E]] {
	return s.tree.Keys()
}

// Len returns the number of keys.
func (s *Set[E]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether the set has no keys.
func (s *Set[E]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Clear removes all keys.
func (s *Set[E]) Clear() {
	s.tree.Clear()
}

// Equal reports whether both sets hold exactly the same keys.
func (s *Set[E]) Equal(other *Set[E]) bool {
	if s.Len() != other.Len() {
		return false
	}
	a, b := s.tree.Iterator(), other.tree.Iterator()
	for {
		ka, _, erra := a.Next()
		kb, _, errb := b.Next()
		if erra != nil || errb != nil {
			return erra != nil && errb != nil
		}
		if compareKeys(ka, kb) != 0 {
			return false
		}
	}
}

func (s *Set[E]) String() string {
	var b strings.Builder
	b.WriteString("radix.Set[")
	first := true
	s.tree.Walk(func(k Key[E], _ struct{}) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(formatKey(k))
		return true
	})
	b.WriteString("]")
	return b.String()
}
