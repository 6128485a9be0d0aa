package radix

import "sort"

type (
	// edge connects a node to the single child it exclusively owns.
	// The label is a non-empty run of key elements; concatenating the
	// labels from the root down to a node spells the keys below it.
	edge[E Element, V any] struct {
		label []E
		child *node[E, V]
	}

	// node holds an optional terminal value and its outgoing edges,
	// kept sorted by the first element of each label. No two edges
	// leaving a node share a first element.
	node[E Element, V any] struct {
		value    V
		hasValue bool
		edges    []edge[E, V]
	}
)

func newTerminal[E Element, V any](value V) *node[E, V] {
	return &node[E, V]{value: value, hasValue: true}
}

// findEdge locates the edge whose label starts with el. When no such
// edge exists, the returned index is where one would be inserted to
// keep the slice sorted. Small fan-outs are scanned linearly; larger
// ones are binary searched. The switch point is a tunable with no
// semantic effect.
func (n *node[E, V]) findEdge(el E, threshold int) (int, bool) {
	if len(n.edges) <= threshold {
		for i := range n.edges {
			first := n.edges[i].label[0]
			if first == el {
				return i, true
			}
			if first > el {
				return i, false
			}
		}
		return len(n.edges), false
	}

	idx := sort.Search(len(n.edges), func(i int) bool {
		return n.edges[i].label[0] >= el
	})
	if idx < len(n.edges) && n.edges[idx].label[0] == el {
		return idx, true
	}
	return idx, false
}

// addEdge inserts e at idx, as previously reported by findEdge.
func (n *node[E, V]) addEdge(idx int, e edge[E, V]) {
	n.edges = append(n.edges, edge[E, V]{})
	copy(n.edges[idx+1:], n.edges[idx:])
	n.edges[idx] = e
}

func (n *node[E, V]) delEdge(idx int) {
	copy(n.edges[idx:], n.edges[idx+1:])
	n.edges[len(n.edges)-1] = edge[E, V]{}
	n.edges = n.edges[:len(n.edges)-1]
}

func (n *node[E, V]) setValue(value V) (prev V, replaced bool) {
	prev, replaced = n.value, n.hasValue
	n.value, n.hasValue = value, true
	return prev, replaced
}

func (n *node[E, V]) clearValue() (prev V, removed bool) {
	prev, removed = n.value, n.hasValue
	var zero V
	n.value, n.hasValue = zero, false
	return prev, removed
}

// mergeGrandchild collapses the value-less single-edge child behind
// n.edges[idx] into the edge itself, restoring the compression
// invariant after a removal pruned one of the child's edges.
func (n *node[E, V]) mergeGrandchild(idx int) {
	e := &n.edges[idx]
	g := e.child.edges[0]
	e.label = concat(e.label, g.label)
	e.child = g.child
}

// countValues reports the number of terminal nodes at or below n,
// walked with an explicit stack.
func (n *node[E, V]) countValues() int {
	count := 0
	stack := []*node[E, V]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.hasValue {
			count++
		}
		for i := range cur.edges {
			stack = append(stack, cur.edges[i].child)
		}
	}
	return count
}
