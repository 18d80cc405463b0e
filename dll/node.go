package dll

import "fmt"

// Poison is the value held by the two sentinel nodes of every
// list. It is never returned as data; seeing it in a debugger means
// something read through a sentinel.
const Poison = -1337

type node struct {
	prev     *node
	next     *node
	list     *List
	sentinel bool
	value    int
}

func (n *node) String() string { return fmt.Sprint(n.value) }

func (n *node) ok() bool { return n != nil && !n.sentinel && n.list != nil }

// append splices val in immediately after n.
func (n *node) append(val *node) *node {
	val.list = n.list
	val.prev = n
	val.next = n.next
	val.prev.next = val
	val.next.prev = val
	return val
}

// detach clears every reference the node holds, so that iterators
// still pointing at it report !Ok().
func (n *node) detach() {
	n.prev = nil
	n.next = nil
	n.list = nil
}

// make sure we have members of the same list, and that neither is a
// sentinel.
func (n *node) swappable(with *node) bool {
	return n.ok() && with.ok() && n.list == with.list
}

// exchange relinks the two nodes so that each takes the other's place
// in the chain. Adjacent nodes, in either order, are handled by the
// same sequence: the intermediate self-references are overwritten
// by the second half of the exchange.
func (n *node) exchange(with *node) {
	n.next, with.next = with.next, n.next
	n.next.prev = n
	with.next.prev = with

	n.prev, with.prev = with.prev, n.prev
	n.prev.next = n
	with.prev.next = with
}
