package signals

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sync"

	"github.com/zeusync/corgecs/pkg/sequence"
)

// Result aggregates the values returned by the handlers of a Request.
// Values keep the order in which handlers ran.
//
// A nil *Result is treated as having no result by every read method.
type Result[T any] struct {
	values []T
	// sealed marks the shared None instance.
	sealed bool
}

// nones holds one sealed empty Result per element type.
var nones sync.Map // reflect.Type -> *Result[T]

// None returns the canonical empty result for T. The same pointer is returned
// on every call and it must be treated as read-only: Add and Merge panic.
func None[T any]() *Result[T] {
	key := reflect.TypeFor[T]()
	if r, ok := nones.Load(key); ok {
		return r.(*Result[T])
	}
	r, _ := nones.LoadOrStore(key, &Result[T]{sealed: true})
	return r.(*Result[T])
}

// NewResult creates a result seeded with values. Without values it has no
// result until something is added.
func NewResult[T any](values ...T) *Result[T] {
	return &Result[T]{values: slices.Clone(values)}
}

// HasResult reports whether at least one value was added.
func (r *Result[T]) HasResult() bool {
	return r != nil && len(r.values) > 0
}

// Len returns the number of values.
func (r *Result[T]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.values)
}

// Add appends a single value.
func (r *Result[T]) Add(value T) {
	r.mustBeMutable()
	r.values = append(r.values, value)
}

// Merge appends every value of other, keeping their order. A nil or empty
// other changes nothing.
func (r *Result[T]) Merge(other *Result[T]) {
	if !other.HasResult() {
		return
	}
	r.mustBeMutable()
	r.values = append(r.values, other.values...)
}

// Each calls fn for every value in order and returns r.
func (r *Result[T]) Each(fn func(T)) *Result[T] {
	if r == nil {
		return r
	}
	for _, v := range r.values {
		fn(v)
	}
	return r
}

// Values returns a copy of the collected values.
func (r *Result[T]) Values() []T {
	if r == nil {
		return nil
	}
	return slices.Clone(r.values)
}

// All returns a sequence over the values. It can be ranged over any number
// of times.
func (r *Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r == nil {
			return
		}
		for _, v := range r.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Iter returns a chainable iterator over the values.
func (r *Result[T]) Iter() *sequence.Iterator[T] {
	return sequence.FromSeq(r.All())
}

func (r *Result[T]) String() string {
	if !r.HasResult() {
		return "Result[]"
	}
	return fmt.Sprintf("Result%v", r.values)
}

func (r *Result[T]) mustBeMutable() {
	if r.sealed {
		panic(fmt.Sprintf("signals: None[%v] is read-only", reflect.TypeFor[T]()))
	}
}

// Map applies fn to each value of r and returns the results in a new Result.
// When r has no result, None[U] is returned.
func Map[T, U any](r *Result[T], fn func(T) U) *Result[U] {
	if !r.HasResult() {
		return None[U]()
	}
	out := &Result[U]{values: make([]U, 0, len(r.values))}
	for _, v := range r.values {
		out.values = append(out.values, fn(v))
	}
	return out
}
