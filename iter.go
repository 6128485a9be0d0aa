package radix

import "iter"

const nullIdx = -1

type (
	// frame is one level of the traversal stack: a node, the index of
	// its next edge to descend, and the key spelled from the root down
	// to it. nullIdx marks a node whose own value has not been
	// yielded yet.
	frame[E Element, V any] struct {
		n       *node[E, V]
		edgeIdx int
		key     []E
	}

	// Iterator walks a tree (or a prefix-bounded subtree) in
	// ascending key order with an explicit stack, so deep trees never
	// grow the call stack. Each Iterator owns its state; mutating the
	// tree while one is live is unsupported.
	Iterator[E Element, V any] struct {
		stack []frame[E, V]
	}

	// WalkFn is called for each key/value pair during a Walk. Return
	// false to stop early.
	WalkFn[E Element, V any] func(key Key[E], value V) bool
)

// Iterator returns an iterator over the whole tree.
func (t *Tree[E, V]) Iterator() *Iterator[E, V] {
	return &Iterator[E, V]{
		stack: []frame[E, V]{{n: t.root, edgeIdx: nullIdx}},
	}
}

// Find returns an iterator over every key that starts with prefix, in
// ascending order. A prefix matching nothing yields an exhausted
// iterator. The prefix may end partway through an edge label.
func (t *Tree[E, V]) Find(prefix Key[E]) *Iterator[E, V] {
	var acc []E
	n := t.root
	search := []E(prefix)
	for len(search) > 0 {
		idx, found := n.findEdge(search[0], t.threshold)
		if !found {
			return &Iterator[E, V]{}
		}
		e := &n.edges[idx]
		lcp := longestCommonPrefix(search, e.label)
		switch {
		case lcp == len(e.label):
			acc = append(acc, e.label...)
			search = search[lcp:]
			n = e.child
		case lcp == len(search):
			// The prefix ends inside this label; the whole subtree
			// behind the edge matches.
			acc = append(acc, e.label...)
			return &Iterator[E, V]{
				stack: []frame[E, V]{{n: e.child, edgeIdx: nullIdx, key: acc}},
			}
		default:
			return &Iterator[E, V]{}
		}
	}
	return &Iterator[E, V]{
		stack: []frame[E, V]{{n: n, edgeIdx: nullIdx, key: acc}},
	}
}

// HasNext reports whether another key/value pair remains.
func (it *Iterator[E, V]) HasNext() bool {
	for i := range it.stack {
		f := &it.stack[i]
		if f.edgeIdx == nullIdx && f.n.hasValue {
			return true
		}
		next := f.edgeIdx
		if next == nullIdx {
			next = 0
		}
		if next < len(f.n.edges) {
			// every subtree contains at least one terminal node
			return true
		}
	}
	return false
}

// Next returns the next key/value pair in ascending key order, or
// ErrNoMoreNodes once the iterator is exhausted.
func (it *Iterator[E, V]) Next() (Key[E], V, error) {
	var zero V
	for len(it.stack) > 0 {
		f := &it.stack[len(it.stack)-1]
		if f.edgeIdx == nullIdx {
			f.edgeIdx = 0
			if f.n.hasValue {
				return cloneKey(f.key), f.n.value, nil
			}
		}
		if f.edgeIdx < len(f.n.edges) {
			e := &f.n.edges[f.edgeIdx]
			f.edgeIdx++
			it.stack = append(it.stack, frame[E, V]{
				n:       e.child,
				edgeIdx: nullIdx,
				key:     concat(f.key, e.label),
			})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return nil, zero, ErrNoMoreNodes
}

// All drains the iterator as a lazy sequence, usable with range.
func (it *Iterator[E, V]) All() iter.Seq2[Key[E], V] {
	return func(yield func(Key[E], V) bool) {
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

// All returns a lazy sequence of all key/value pairs in ascending key
// order. Each range starts a fresh traversal.
func (t *Tree[E, V]) All() iter.Seq2[Key[E], V] {
	return func(yield func(Key[E], V) bool) {
		it := t.Iterator()
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

// Keys returns a lazy ascending sequence of all keys.
func (t *Tree[E, V]) Keys() iter.Seq[Key[E]] {
	return func(yield func(Key[E]) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a lazy sequence of all values, ordered by key.
func (t *Tree[E, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Walk calls fn for each key/value pair in ascending key order until
// fn returns false or the tree is exhausted.
func (t *Tree[E, V]) Walk(fn WalkFn[E, V]) {
	it := t.Iterator()
	for {
		k, v, err := it.Next()
		if err != nil {
			return
		}
		if !fn(k, v) {
			return
		}
	}
}
