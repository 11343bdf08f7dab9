package ecs

import (
	"sync/atomic"

	"github.com/zeusync/corgecs/pkg/signals"
)

// Component is a unit of behavior or state attached to exactly one entity.
// Implementations embed Base and provide Initialise:
//
//	type Health struct {
//		ecs.Base
//		HP int
//	}
//
//	func (h *Health) Initialise() {
//		ecs.RegisterSignal(h, func(d Damaged) { h.HP -= d.Amount })
//	}
type Component interface {
	// Initialise runs once, right after the component is attached. It is the
	// place to register signal handlers and join systems.
	Initialise()
	// Parent returns the owning entity, or nil before attachment.
	Parent() *Entity

	attach(e *Entity) bool
}

// Base carries the parent link of a component. It must be embedded, not
// copied after attachment.
type Base struct {
	parent atomic.Pointer[Entity]
}

func (b *Base) Parent() *Entity {
	return b.parent.Load()
}

// World returns the world of the parent entity, or nil when detached.
func (b *Base) World() *World {
	if e := b.Parent(); e != nil {
		return e.World()
	}
	return nil
}

// Attached reports whether the component has a parent.
func (b *Base) Attached() bool {
	return b.Parent() != nil
}

// attach sets the parent once. It reports false if a parent was already set.
func (b *Base) attach(e *Entity) bool {
	return b.parent.CompareAndSwap(nil, e)
}

// RegisterSignal subscribes handler to signals of type T raised on the
// component's entity. It does nothing when c is not attached yet.
func RegisterSignal[T signals.Signal](c Component, handler func(T)) {
	if e := c.Parent(); e != nil {
		registerSignal(e, handler)
	}
}

// RegisterRequest subscribes a responding handler to requests of type T
// raised on the component's entity. It does nothing when c is not attached yet.
func RegisterRequest[T signals.Request[R], R any](c Component, handler func(T) *signals.Result[R]) {
	if e := c.Parent(); e != nil {
		registerRequestHandler(e, handler)
	}
}
