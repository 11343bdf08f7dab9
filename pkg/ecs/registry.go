package ecs

import (
	"reflect"
	"sync"

	"github.com/zeusync/corgecs/pkg/signals"
)

// registry holds the signal handlers of one entity, keyed by the concrete
// type of the signal. Handlers are wrapped at registration into closures
// taking the signal as any. A closure only ever sits under the key of the
// type it asserts to, so the assertion cannot fail.
type registry struct {
	mu       sync.Mutex
	mode     DispatchMode
	void     map[reflect.Type][]func(any)
	requests map[reflect.Type][]func(any) any
}

func registerVoid[T signals.Signal](r *registry, handler func(T)) {
	key := reflect.TypeFor[T]()
	h := func(s any) { handler(s.(T)) }

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.void == nil {
		r.void = make(map[reflect.Type][]func(any))
	}
	r.void[key] = append(r.void[key], h)
}

func registerRequest[T signals.Request[R], R any](r *registry, handler func(T) *signals.Result[R]) {
	key := reflect.TypeFor[T]()
	h := func(s any) any { return handler(s.(T)) }

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.requests == nil {
		r.requests = make(map[reflect.Type][]func(any) any)
	}
	r.requests[key] = append(r.requests[key], h)
}

// dispatchVoid runs the handlers filed under key in registration order and
// returns how many ran.
func (r *registry) dispatchVoid(key reflect.Type, signal any) int {
	r.mu.Lock()
	handlers := r.void[key]
	if r.mode == DispatchSnapshot {
		r.mu.Unlock()
	} else {
		defer r.mu.Unlock()
	}

	for _, h := range handlers {
		h(signal)
	}
	return len(handlers)
}

// dispatchRequest runs the responding handlers filed under key and folds
// their results in registration order. Without handlers it returns None.
func dispatchRequest[R any](r *registry, key reflect.Type, signal any) (*signals.Result[R], int) {
	r.mu.Lock()
	handlers := r.requests[key]
	if r.mode == DispatchSnapshot {
		r.mu.Unlock()
	} else {
		defer r.mu.Unlock()
	}

	if len(handlers) == 0 {
		return signals.None[R](), 0
	}
	out := signals.NewResult[R]()
	for _, h := range handlers {
		out.Merge(h(signal).(*signals.Result[R]))
	}
	return out, len(handlers)
}

func (r *registry) handlerCount(key reflect.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.void[key]) + len(r.requests[key])
}
