package ecs

import "errors"

var (
	// ErrAlreadyAttached is returned when a component that already belongs to
	// an entity is added to an entity again.
	ErrAlreadyAttached = errors.New("component already attached to an entity")
	// ErrNilComponent is returned when a nil component is added.
	ErrNilComponent = errors.New("nil component")
	// ErrHandlerPanic wraps a panic recovered from a signal handler by Broadcast.
	ErrHandlerPanic = errors.New("signal handler panicked")
)
