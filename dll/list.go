// Package dll provides a doubly linked list of integers bounded by
// two sentinel nodes, with a bidirectional Iterator that can compare
// positions and a Swap operation that exchanges two nodes in the
// chain without moving their values.
//
// The list is not safe for concurrent use. Callers are responsible
// for their own concurrency control, and should generally use it
// with the same care as a slice.
package dll

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tychoish/linksort/ers"
)

// List is a doubly linked list of integers. The zero value is an
// empty list ready to use.
//
// Two sentinel nodes, one before the first element and one after the
// last, are allocated when the list is first used and live as long
// as the list does. Because every real node always has a neighbor on
// both sides, appending and swapping never special-case the ends of
// the chain.
type List struct {
	prefirst *node
	postlast *node
}

// New constructs a list holding the values in order.
func New(values ...int) *List {
	l := &List{}
	l.Append(values...)
	return l
}

// PushBack adds a value to the end of the list. O(1).
func (l *List) PushBack(v int) { l.tail().prev.append(&node{value: v}) }

// Append adds a variadic sequence of items to the end of the list.
func (l *List) Append(values ...int) {
	for idx := range values {
		l.PushBack(values[idx])
	}
}

// Begin returns an iterator referencing the first element of the
// list, or End() when the list is empty.
func (l *List) Begin() Iterator { return Iterator{node: l.head().next} }

// End returns an iterator referencing the sentinel after the last
// element. It must never be dereferenced.
func (l *List) End() Iterator { return Iterator{node: l.tail()} }

// Before returns an iterator referencing the sentinel before the
// first element. Like End, it must never be dereferenced; it exists
// as the stopping point for backward walks.
func (l *List) Before() Iterator { return Iterator{node: l.head()} }

// Len counts the elements of the list by walking from Begin to
// End. This is an O(n) operation.
func (l *List) Len() int {
	if l == nil || l.prefirst == nil {
		return 0
	}

	count := 0
	for it, end := l.Begin(), l.End(); !it.Equal(end); it = it.Next() {
		count++
	}
	return count
}

// At returns an iterator referencing the element at index n, found
// by advancing from Begin n times. The error wraps ErrOutOfRange when
// n is negative or the walk reaches End first.
func (l *List) At(n int) (Iterator, error) {
	if n < 0 {
		return Iterator{}, fmt.Errorf("index %d: %w", n, ErrOutOfRange)
	}

	it, end := l.Begin(), l.End()
	for idx := 0; idx < n && !it.Equal(end); idx++ {
		it = it.Next()
	}

	if it.Equal(end) {
		return Iterator{}, fmt.Errorf("index %d: %w", n, ErrOutOfRange)
	}

	return it, nil
}

// Get returns the value at index n.
func (l *List) Get(n int) (int, error) {
	it, err := l.At(n)
	if err != nil {
		return 0, err
	}
	return it.Value(), nil
}

// Set replaces the value at index n.
func (l *List) Set(n, v int) error {
	it, err := l.At(n)
	if err != nil {
		return err
	}
	it.Set(v)
	return nil
}

// Reset releases every element of the list, leaving the list empty
// but usable. Each released node has its links cleared, so iterators
// that still reference one of them report !Ok() and compare as
// unordered against the list. Reset on an empty or zero list is a
// no-op.
func (l *List) Reset() {
	if l == nil || l.prefirst == nil {
		return
	}

	for n := l.prefirst.next; n != l.postlast; {
		next := n.next
		n.detach()
		n = next
	}

	l.prefirst.next = l.postlast
	l.postlast.prev = l.prefirst
}

// Copy duplicates the list. The nodes of the two lists are distinct.
func (l *List) Copy() *List {
	out := &List{}
	for v := range l.All() {
		out.PushBack(v)
	}
	return out
}

// Slice exports the contents of the list to a slice.
func (l *List) Slice() []int {
	out := []int{}
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// All returns a native go iterator over the values in the list, from
// front to back. Swapping nodes during iteration is undefined.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if l == nil || l.prefirst == nil {
			return
		}
		for n := l.prefirst.next; n.ok(); n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns a native go iterator over the values in the list,
// from back to front.
func (l *List) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		if l == nil || l.postlast == nil {
			return
		}
		for n := l.postlast.prev; n.ok(); n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String renders the values separated by a single space, without a
// trailing separator.
func (l *List) String() string {
	var buf strings.Builder
	for v := range l.All() {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, v)
	}
	return buf.String()
}

func (l *List) head() *node { l.lazySetup(); return l.prefirst }
func (l *List) tail() *node { l.lazySetup(); return l.postlast }

func (l *List) lazySetup() {
	ers.Invariant(l != nil, ErrUninitialized)

	if l.prefirst != nil {
		return
	}

	l.prefirst = &node{value: Poison, sentinel: true, list: l}
	l.postlast = &node{value: Poison, sentinel: true, list: l}
	l.prefirst.next = l.postlast
	l.postlast.prev = l.prefirst
}
