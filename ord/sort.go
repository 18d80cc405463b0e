// Package ord provides in-place sorting algorithms for dll lists.
//
// The algorithms see the list only through dll.Iterator and
// dll.Swap: they permute nodes, never values, and never touch a node
// directly. Range boundaries are iterators rather than offsets, so
// every boundary check is a positional comparison that walks the
// chain (see dll.Iterator). The comparison count follows the
// classical algorithms, but each comparison costs O(distance).
package ord

import "github.com/tychoish/linksort/dll"

// QuickSort sorts the half-open range [beg, end) in ascending order,
// using the last element of the range as the pivot. Empty and single
// element ranges are returned unchanged.
//
// Both boundaries must reference nodes of the same list, with beg at
// or before end; the node at end is never moved.
func QuickSort(beg, end dll.Iterator) {
	if beg.GreaterEqual(end) {
		return
	}

	pivot := end.Prev()
	i := beg

	for j := beg; !j.Equal(pivot); j = j.Next() {
		if j.Value() < pivot.Value() {
			// the swap moves the front node out to j's position;
			// follow the node that replaces it.
			if i.Equal(beg) {
				beg = j
			}

			dll.Swap(&i, &j)
			i = i.Next()
		}
	}

	dll.Swap(&i, &pivot)

	QuickSort(beg, i)
	QuickSort(i.Next(), pivot.Next())
}

// InsertionSort sorts the half-open range [beg, end) in ascending
// order. Equal values are never swapped.
//
// Both boundaries must reference nodes of the same list, with beg at
// or before end; neither the node at end nor the one before beg is
// ever moved.
func InsertionSort(beg, end dll.Iterator) {
	if beg.Equal(end) {
		return
	}

	front := beg.Prev()

	for i := beg.Next(); !i.Equal(end); {
		// i's node may travel toward the front; the node after it
		// stays put until the next pass.
		next := i.Next()

		for j := i; !j.Prev().Equal(front); {
			prev := j.Prev()
			if !(j.Value() < prev.Value()) {
				break
			}

			dll.Swap(&j, &prev)
			j = prev
		}

		i = next
	}
}

// IsSorted reports if the list is sorted from low to high.
func IsSorted(list *dll.List) bool {
	if list == nil {
		return true
	}

	end := list.End()
	for it := list.Begin(); !it.Equal(end) && !it.Next().Equal(end); it = it.Next() {
		if it.Next().Value() < it.Value() {
			return false
		}
	}
	return true
}
