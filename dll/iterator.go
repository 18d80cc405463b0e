package dll

import (
	"fmt"

	"github.com/tychoish/linksort/ers"
)

// Iterator is a position in a List: a non-owning handle on one node,
// either an element or one of the two sentinels. Iterators are
// values; copying one copies the handle.
//
// Because nodes are not stored contiguously, the relative order of
// two iterators cannot be computed from their addresses. Less,
// Greater and their inclusive forms walk the chain instead and cost
// O(distance) in the best case and O(n) when the answer is false.
// Callers that compare iterators in a loop should keep the compared
// positions close together.
//
// The zero Iterator references nothing. It is never Ok, never equal
// to a position in a list, and never ordered against one.
type Iterator struct {
	node *node
}

// Next returns the iterator on the following node. Stepping past
// End() produces an iterator that references nothing.
func (it Iterator) Next() Iterator {
	if it.node == nil {
		return it
	}
	return Iterator{node: it.node.next}
}

// Prev returns the iterator on the preceding node. Stepping back from
// the sentinel before the first element produces an iterator that
// references nothing.
func (it Iterator) Prev() Iterator {
	if it.node == nil {
		return it
	}
	return Iterator{node: it.node.prev}
}

// Ok reports whether the iterator references an element of a list,
// and so may be dereferenced.
func (it Iterator) Ok() bool { return it.node.ok() }

// IsSentinel reports whether the iterator references one of the
// boundary nodes of a list.
func (it Iterator) IsSentinel() bool { return it.node != nil && it.node.sentinel }

// Equal reports whether both iterators reference the same node.
func (it Iterator) Equal(other Iterator) bool { return it.node == other.node }

// Greater reports whether it lies strictly after other, by walking
// backward from it until other or the start of the chain is reached.
func (it Iterator) Greater(other Iterator) bool {
	if it.node == nil || other.node == nil {
		return false
	}
	for n := it.node.prev; n != nil; n = n.prev {
		if n == other.node {
			return true
		}
	}
	return false
}

// Less reports whether it lies strictly before other, by walking
// forward from it until other or the end of the chain is reached.
func (it Iterator) Less(other Iterator) bool {
	if it.node == nil || other.node == nil {
		return false
	}
	for n := it.node.next; n != nil; n = n.next {
		if n == other.node {
			return true
		}
	}
	return false
}

// GreaterEqual is Equal or Greater.
func (it Iterator) GreaterEqual(other Iterator) bool { return it.Equal(other) || it.Greater(other) }

// LessEqual is Equal or Less.
func (it Iterator) LessEqual(other Iterator) bool { return it.Equal(other) || it.Less(other) }

// Value returns the value of the referenced element. Dereferencing a
// sentinel, or an iterator that references nothing, is a contract
// violation and panics with an error wrapping ErrInvalidDereference.
func (it Iterator) Value() int {
	v, err := it.Get()
	ers.Invariant(err == nil, err)
	return v
}

// Get is the non-panicking form of Value.
func (it Iterator) Get() (int, error) {
	if !it.node.ok() {
		return 0, fmt.Errorf("%s: %w", it.describe(), ErrInvalidDereference)
	}
	return it.node.value, nil
}

// Set writes through the iterator, returning false (and changing
// nothing) when the iterator does not reference an element.
func (it Iterator) Set(v int) bool {
	if !it.node.ok() {
		return false
	}
	it.node.value = v
	return true
}

// String returns the value of the element, or a marker for sentinels
// and empty iterators.
func (it Iterator) String() string {
	if !it.node.ok() {
		return it.describe()
	}
	return it.node.String()
}

func (it Iterator) describe() string {
	switch {
	case it.node == nil:
		return "<nil>"
	case it.node.sentinel:
		return "<sentinel>"
	case it.node.list == nil:
		return "<released>"
	default:
		return "<element>"
	}
}

// Swap exchanges the positions of the two referenced nodes in their
// list by relinking their neighbors, then exchanges the two handles.
// Afterwards a and b each still denote the position they denoted
// before the call, and the values at those two positions have traded
// places. Any other iterator keeps referencing the same node it did
// before, wherever that node now sits. O(1).
//
// Swap returns false, and changes nothing, when the iterators
// reference the same node, either references a sentinel or nothing,
// or the nodes belong to different lists.
func Swap(a, b *Iterator) bool {
	if a == nil || b == nil || a.node == b.node || !a.node.swappable(b.node) {
		return false
	}

	a.node.exchange(b.node)
	a.node, b.node = b.node, a.node
	return true
}
