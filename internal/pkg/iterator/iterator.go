package iterator

import "sync/atomic"

// Iterator cycles through Items in order, wrapping at the end.
// Next is safe for concurrent use; Items must not change after first use.
type Iterator[T any] struct {
	Items []T
	index atomic.Uint64
}

func (it *Iterator[T]) Next() T {
	n := uint64(len(it.Items))
	if n == 0 {
		var zero T
		return zero
	}
	i := it.index.Add(1) - 1
	if n&(n-1) == 0 {
		return it.Items[i&(n-1)]
	}
	return it.Items[i%n]
}
