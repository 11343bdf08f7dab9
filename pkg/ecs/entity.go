package ecs

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zeusync/corgecs/pkg/signals"
)

// Entity owns an ordered list of components and the signal handlers they
// registered. Entities are created with World.CreateEntity.
type Entity struct {
	id    uuid.UUID
	world *World

	mu         sync.RWMutex
	components []Component

	signals  registry
	counters dispatchCounters
}

func newEntity(w *World) *Entity {
	e := &Entity{
		id:    uuid.New(),
		world: w,
	}
	e.signals.mode = w.opts.mode
	return e
}

func (e *Entity) ID() uuid.UUID { return e.id }

// World returns the world the entity was created in.
func (e *Entity) World() *World { return e.world }

func (e *Entity) String() string { return "entity(" + e.id.String() + ")" }

// AddComponent attaches c to the entity and runs its Initialise. A component
// already attached to any entity is rejected with ErrAlreadyAttached; the
// component list is left untouched and Initialise does not run again.
func (e *Entity) AddComponent(c Component) error {
	if c == nil {
		return fmt.Errorf("add component to %s: %w", e, ErrNilComponent)
	}
	if !c.attach(e) {
		e.world.log.Warn("component rejected",
			zap.Stringer("entity", e.id),
			zap.String("component", fmt.Sprintf("%T", c)),
			zap.Stringer("owner", c.Parent().ID()),
		)
		return fmt.Errorf("add %T to %s: %w", c, e, ErrAlreadyAttached)
	}

	e.mu.Lock()
	e.components = append(e.components, c)
	e.mu.Unlock()

	e.world.log.Debug("component attached",
		zap.Stringer("entity", e.id),
		zap.String("component", fmt.Sprintf("%T", c)),
	)
	c.Initialise()
	return nil
}

// WithComponent is the chaining form of AddComponent. Reusing a component is
// a programming error, so it panics where AddComponent returns an error.
func (e *Entity) WithComponent(c Component) *Entity {
	if err := e.AddComponent(c); err != nil {
		panic(err)
	}
	return e
}

// Components returns the attached components in insertion order.
func (e *Entity) Components() []Component {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.components)
}

// GetComponent returns the first component of e, in insertion order, that
// is a T. T may be a concrete component type or an interface describing a
// capability.
func GetComponent[T any](e *Entity) (T, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, c := range e.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Metrics returns the entity's dispatch counters.
func (e *Entity) Metrics() DispatchMetrics {
	return e.counters.snapshot()
}

// HasHandlers reports whether any handler is registered for the signal type T.
func HasHandlers[T any](e *Entity) bool {
	return e.signals.handlerCount(reflect.TypeFor[T]()) > 0
}

// Raise delivers signal to every handler registered on e for its concrete
// type, in registration order, on the calling goroutine. Without handlers it
// does nothing.
func Raise[T signals.Signal](e *Entity, signal T) {
	key := reflect.TypeOf(signal)
	start := e.beginDispatch(key)
	n := e.signals.dispatchVoid(key, signal)
	e.endDispatch(key, n, start)
}

// RaiseRequest delivers signal to every responding handler registered on e
// for its concrete type and returns their results in registration order.
// Without handlers it returns signals.None.
func RaiseRequest[T signals.Request[R], R any](e *Entity, signal T) *signals.Result[R] {
	key := reflect.TypeOf(signal)
	start := e.beginDispatch(key)
	out, n := dispatchRequest[R](&e.signals, key, signal)
	e.endDispatch(key, n, start)
	return out
}

func registerSignal[T signals.Signal](e *Entity, handler func(T)) {
	registerVoid(&e.signals, handler)
	e.counters.registered.Add(1)
	e.world.log.Debug("signal handler registered",
		zap.Stringer("entity", e.id),
		zap.Stringer("signal", reflect.TypeFor[T]()),
	)
}

func registerRequestHandler[T signals.Request[R], R any](e *Entity, handler func(T) *signals.Result[R]) {
	registerRequest(&e.signals, handler)
	e.counters.registered.Add(1)
	e.world.log.Debug("request handler registered",
		zap.Stringer("entity", e.id),
		zap.Stringer("signal", reflect.TypeFor[T]()),
		zap.Stringer("result", reflect.TypeFor[R]()),
	)
}

func (e *Entity) beginDispatch(key reflect.Type) time.Time {
	e.counters.raised.Add(1)
	observers := e.world.opts.observers
	if len(observers) == 0 {
		return time.Time{}
	}
	for _, obs := range observers {
		obs.OnRaise(e, key)
	}
	return time.Now()
}

func (e *Entity) endDispatch(key reflect.Type, handlers int, start time.Time) {
	if handlers == 0 {
		e.counters.unhandled.Add(1)
	} else {
		e.counters.delivered.Add(uint64(handlers))
	}
	observers := e.world.opts.observers
	if len(observers) == 0 {
		return
	}
	took := time.Since(start)
	for _, obs := range observers {
		obs.OnDelivered(e, key, handlers, took)
	}
}
