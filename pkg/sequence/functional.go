package sequence

import (
	"iter"
	"sort"
)

// Iterator is a generic, immutable, chainable iterator for any type T.
// Iterating never consumes it: every terminal call walks the source again.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator over a slice of T. The slice is not copied.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// FromSeq wraps an existing sequence.
func FromSeq[T any](seq iter.Seq[T]) *Iterator[T] {
	if seq == nil {
		return Empty[T]()
	}
	return &Iterator[T]{seq: seq}
}

// Empty returns an iterator that yields nothing.
func Empty[T any]() *Iterator[T] {
	return &Iterator[T]{seq: func(func(T) bool) {}}
}

// Seq returns the underlying sequence function for the iterator.
// This allows ranging over the iterator directly.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

// Pull pulls the next element from the iterator and returns it along with a boolean indicating whether the element was valid.
func (i *Iterator[T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(i.Seq())
}

// Collect walks the iterator and returns a slice of all elements.
func (i *Iterator[T]) Collect() []T {
	var out []T
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Sort returns a new Iterator with elements sorted according to the provided less function.
func (i *Iterator[T]) Sort(less func(a, b T) bool) *Iterator[T] {
	data := i.Collect()
	sort.SliceStable(data, func(a, b int) bool {
		return less(data[a], data[b])
	})
	return From(data)
}

// ForEach applies the action to every element in the iterator.
func (i *Iterator[T]) ForEach(action func(T)) {
	i.seq(func(v T) bool {
		action(v)
		return true
	})
}

// Filter returns a new Iterator containing only elements that satisfy the predicate.
func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			i.seq(func(v T) bool {
				if pred(v) {
					return yield(v)
				}
				return true
			})
		},
	}
}

// Find returns the first element matching the predicate, or false if not found.
func (i *Iterator[T]) Find(pred func(T) bool) (T, bool) {
	var zero T
	found := false
	i.seq(func(v T) bool {
		if pred(v) {
			zero = v
			found = true
			return false
		}
		return true
	})
	return zero, found
}

// Any returns true if any element matches the predicate.
func (i *Iterator[T]) Any(pred func(T) bool) bool {
	_, found := i.Find(pred)
	return found
}

// Count returns the number of elements.
func (i *Iterator[T]) Count() int {
	n := 0
	i.seq(func(T) bool {
		n++
		return true
	})
	return n
}

// Map returns a new Iterator applying fn to each element of i.
func Map[T, U any](i *Iterator[T], fn func(T) U) *Iterator[U] {
	return &Iterator[U]{
		seq: func(yield func(U) bool) {
			i.seq(func(v T) bool {
				return yield(fn(v))
			})
		},
	}
}

// Contains reports whether v is yielded by i.
func Contains[T comparable](i *Iterator[T], v T) bool {
	return i.Any(func(x T) bool { return x == v })
}
