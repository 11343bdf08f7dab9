package ecs

import (
	"reflect"
	"sync/atomic"
	"time"
)

// Observer is notified about signal dispatches. It can be used to export
// metrics, traces or logs. Observers run on the raising goroutine, outside
// the entity lock, and should return quickly.
type Observer interface {
	OnRaise(e *Entity, signal reflect.Type)
	OnDelivered(e *Entity, signal reflect.Type, handlers int, took time.Duration)
}

// DispatchMetrics is a snapshot of an entity's signal counters.
type DispatchMetrics struct {
	// Registered counts handlers registered, void and responding.
	Registered uint64
	// Raised counts Raise and RaiseRequest calls.
	Raised uint64
	// Delivered counts handler invocations.
	Delivered uint64
	// Unhandled counts raises that found no handler.
	Unhandled uint64
}

type dispatchCounters struct {
	registered atomic.Uint64
	raised     atomic.Uint64
	delivered  atomic.Uint64
	unhandled  atomic.Uint64
}

func (c *dispatchCounters) snapshot() DispatchMetrics {
	return DispatchMetrics{
		Registered: c.registered.Load(),
		Raised:     c.raised.Load(),
		Delivered:  c.delivered.Load(),
		Unhandled:  c.unhandled.Load(),
	}
}
