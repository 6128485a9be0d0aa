// Package radix implements a generic radix tree (compressed prefix
// trie) and the ordered Map and Set containers built on top of it.
//
// Keys are sequences of ordered elements, bytes for string-like keys.
// Shared prefixes are stored once, which keeps memory down on large
// key sets and makes prefix queries (autocompletion-style lookups)
// cheap. Iteration is always in ascending lexicographic key order.
//
// The tree performs no internal synchronization. Concurrent readers
// are fine as long as no writer is active; anything else needs
// external locking.
package radix

import "errors"

const (
	// defaultEdgeSearchThreshold is the fan-out above which edge
	// lookup switches from a linear scan to binary search. Linear
	// wins on small nodes; tune per workload with
	// WithEdgeSearchThreshold.
	defaultEdgeSearchThreshold = 16
)

var (
	ErrNoMoreNodes = errors.New("there are no more nodes in the tree")
)

// Tree is a radix tree mapping element-sequence keys to values. The
// zero value is not usable; construct with New.
type Tree[E Element, V any] struct {
	root      *node[E, V]
	size      int
	threshold int
}

// Option configures a Tree and the containers built on one.
type Option func(*config)

type config struct {
	edgeSearchThreshold int
}

// WithEdgeSearchThreshold sets the node fan-out above which edges are
// binary searched instead of scanned linearly.
func WithEdgeSearchThreshold(n int) Option {
	return func(c *config) {
		c.edgeSearchThreshold = n
	}
}

// New returns an empty tree.
func New[E Element, V any](opts ...Option) *Tree[E, V] {
	cfg := config{edgeSearchThreshold: defaultEdgeSearchThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tree[E, V]{
		root:      &node[E, V]{},
		threshold: cfg.edgeSearchThreshold,
	}
}

// Len returns the number of stored keys.
func (t *Tree[E, V]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[E, V]) IsEmpty() bool {
	return t.size == 0
}

// Insert stores value under key, overwriting any previous value for
// the same key. It returns the previous value and whether one was
// replaced. The empty key is valid and stored on the root.
func (t *Tree[E, V]) Insert(key Key[E], value V) (V, bool) {
	var zero V
	n := t.root
	search := []E(key)
	for {
		if len(search) == 0 {
			prev, replaced := n.setValue(value)
			if !replaced {
				t.size++
			}
			return prev, replaced
		}

		idx, found := n.findEdge(search[0], t.threshold)
		if !found {
			n.addEdge(idx, edge[E, V]{
				label: cloneKey(search),
				child: newTerminal[E](value),
			})
			t.size++
			return zero, false
		}

		e := &n.edges[idx]
		lcp := longestCommonPrefix(search, e.label)
		if lcp == len(e.label) {
			// full label match, keep descending
			n = e.child
			search = search[lcp:]
			continue
		}

		// The key diverges inside the label: split the edge at the
		// common-prefix boundary and hang both remainders off a new
		// intermediate node.
		mid := &node[E, V]{}
		mid.addEdge(0, edge[E, V]{
			label: cloneKey(e.label[lcp:]),
			child: e.child,
		})
		e.label = cloneKey(e.label[:lcp])
		e.child = mid

		if lcp == len(search) {
			// the new key ends exactly at the split point
			mid.setValue(value)
		} else {
			rest := cloneKey(search[lcp:])
			at, _ := mid.findEdge(rest[0], t.threshold)
			mid.addEdge(at, edge[E, V]{
				label: rest,
				child: newTerminal[E](value),
			})
		}
		t.size++
		return zero, false
	}
}

// Get returns the value stored under key, if any.
func (t *Tree[E, V]) Get(key Key[E]) (V, bool) {
	var zero V
	n := t.root
	search := []E(key)
	for {
		if len(search) == 0 {
			return n.value, n.hasValue
		}
		idx, found := n.findEdge(search[0], t.threshold)
		if !found {
			return zero, false
		}
		e := &n.edges[idx]
		if !hasPrefix(search, e.label) {
			return zero, false
		}
		search = search[len(e.label):]
		n = e.child
	}
}

// Contains reports whether key is stored in the tree.
func (t *Tree[E, V]) Contains(key Key[E]) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove deletes key from the tree, returning the removed value and
// whether the key was present. Removal prunes dead leaves and merges
// value-less single-edge nodes so the compression invariant holds
// afterwards.
func (t *Tree[E, V]) Remove(key Key[E]) (V, bool) {
	old, removed := t.remove(t.root, key)
	if removed {
		t.size--
	}
	return old, removed
}

func (t *Tree[E, V]) remove(n *node[E, V], search []E) (V, bool) {
	var zero V
	if len(search) == 0 {
		return n.clearValue()
	}

	idx, found := n.findEdge(search[0], t.threshold)
	if !found {
		return zero, false
	}
	e := &n.edges[idx]
	if !hasPrefix(search, e.label) {
		return zero, false
	}

	old, removed := t.remove(e.child, search[len(e.label):])
	if !removed {
		return zero, false
	}

	// Bottom-up cleanup: prune the child if it went dead, or collapse
	// it into this edge if it is left a value-less pass-through.
	child := e.child
	if !child.hasValue {
		switch len(child.edges) {
		case 0:
			n.delEdge(idx)
		case 1:
			n.mergeGrandchild(idx)
		}
	}
	return old, true
}

// DeletePrefix removes every key that starts with prefix and returns
// how many were removed. An empty prefix empties the whole tree.
func (t *Tree[E, V]) DeletePrefix(prefix Key[E]) int {
	removed := t.deletePrefix(t.root, prefix)
	t.size -= removed
	return removed
}

func (t *Tree[E, V]) deletePrefix(n *node[E, V], search []E) int {
	if len(search) == 0 {
		removed := n.countValues()
		n.clearValue()
		n.edges = nil
		return removed
	}

	idx, found := n.findEdge(search[0], t.threshold)
	if !found {
		return 0
	}
	e := &n.edges[idx]
	// The prefix may end inside the label; either direction of
	// containment selects the whole child subtree.
	if !hasPrefix(e.label, search) && !hasPrefix(search, e.label) {
		return 0
	}

	var removed int
	if len(e.label) >= len(search) {
		removed = t.deletePrefix(e.child, nil)
	} else {
		removed = t.deletePrefix(e.child, search[len(e.label):])
	}
	if removed == 0 {
		return 0
	}

	child := e.child
	if !child.hasValue {
		switch len(child.edges) {
		case 0:
			n.delEdge(idx)
		case 1:
			n.mergeGrandchild(idx)
		}
	}
	return removed
}

// Clear drops every key, including any value stored for the empty
// key, and resets the count to zero.
func (t *Tree[E, V]) Clear() {
	t.root = &node[E, V]{}
	t.size = 0
}

// LongestPrefix returns the longest stored key that is a prefix of
// key, together with its value.
func (t *Tree[E, V]) LongestPrefix(key Key[E]) (Key[E], V, bool) {
	var (
		lastLen int
		lastVal V
		found   bool
	)
	n := t.root
	search := []E(key)
	for {
		if n.hasValue {
			lastLen = len(key) - len(search)
			lastVal = n.value
			found = true
		}
		if len(search) == 0 {
			break
		}
		idx, ok := n.findEdge(search[0], t.threshold)
		if !ok {
			break
		}
		e := &n.edges[idx]
		if !hasPrefix(search, e.label) {
			break
		}
		search = search[len(e.label):]
		n = e.child
	}
	if !found {
		var zero V
		return nil, zero, false
	}
	return cloneKey(key[:lastLen]), lastVal, true
}

// Minimum returns the lexicographically smallest key and its value.
func (t *Tree[E, V]) Minimum() (Key[E], V, bool) {
	var acc []E
	n := t.root
	for {
		if n.hasValue {
			return acc, n.value, true
		}
		if len(n.edges) == 0 {
			var zero V
			return nil, zero, false
		}
		e := &n.edges[0]
		acc = append(acc, e.label...)
		n = e.child
	}
}

// Maximum returns the lexicographically largest key and its value.
func (t *Tree[E, V]) Maximum() (Key[E], V, bool) {
	var acc []E
	n := t.root
	for {
		if len(n.edges) == 0 {
			if n.hasValue {
				return acc, n.value, true
			}
			var zero V
			return nil, zero, false
		}
		e := &n.edges[len(n.edges)-1]
		acc = append(acc, e.label...)
		n = e.child
	}
}
