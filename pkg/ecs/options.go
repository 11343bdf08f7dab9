package ecs

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DispatchMode controls how long an entity's signal lock is held while a
// signal is being raised.
type DispatchMode uint8

const (
	// DispatchLocked holds the entity's lock for the whole handler loop.
	// Registration and every other dispatch on the same entity wait until
	// the last handler returns. Handlers must not raise signals on, or add
	// components to, their own entity: the lock is not re-entrant and the
	// call deadlocks.
	DispatchLocked DispatchMode = iota
	// DispatchSnapshot copies the handler list under the lock and runs the
	// handlers after releasing it. Handlers may re-enter their entity.
	// Handlers registered while a dispatch runs are not called by it.
	DispatchSnapshot
)

func (m DispatchMode) String() string {
	switch m {
	case DispatchLocked:
		return "locked"
	case DispatchSnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("DispatchMode(%d)", uint8(m))
	}
}

// ParseDispatchMode converts "locked" or "snapshot" into a DispatchMode.
func ParseDispatchMode(s string) (DispatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "locked":
		return DispatchLocked, nil
	case "snapshot":
		return DispatchSnapshot, nil
	default:
		return DispatchLocked, fmt.Errorf("unknown dispatch mode %q", s)
	}
}

const (
	defaultEntityShards     = 16
	defaultBroadcastWorkers = 8
)

type options struct {
	logger    *zap.Logger
	observers []Observer
	mode      DispatchMode
	shards    int
	workers   int
}

// Option configures a World.
type Option func(*options)

// WithLogger sets the logger used by the world and its entities.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver adds an observer notified about every dispatch on every
// entity of the world.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithDispatchMode sets the dispatch mode of entities created by the world.
func WithDispatchMode(mode DispatchMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithEntityShards sets the number of shards of the entity directory.
func WithEntityShards(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.shards = n
		}
	}
}

// WithBroadcastWorkers bounds the number of entities Broadcast raises on at
// the same time.
func WithBroadcastWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:  zap.NewNop(),
		mode:    DispatchLocked,
		shards:  defaultEntityShards,
		workers: defaultBroadcastWorkers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
