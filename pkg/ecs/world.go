package ecs

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// World owns entities and one instance of each system type. Worlds are
// independent of each other.
type World struct {
	opts options
	log  *zap.Logger

	mu      sync.Mutex
	systems map[reflect.Type]System

	entities *directory
}

func NewWorld(opts ...Option) *World {
	o := newOptions(opts)
	return &World{
		opts:     o,
		log:      o.logger.Named("ecs"),
		systems:  make(map[reflect.Type]System),
		entities: newDirectory(o.shards),
	}
}

// CreateEntity creates an empty entity bound to w.
func (w *World) CreateEntity() *Entity {
	e := newEntity(w)
	w.entities.add(e)
	w.log.Debug("entity created", zap.Stringer("entity", e.id))
	return e
}

// Entity looks an entity up by id.
func (w *World) Entity(id uuid.UUID) (*Entity, bool) {
	return w.entities.get(id)
}

// Entities returns every entity of the world in no particular order.
func (w *World) Entities() []*Entity {
	return w.entities.all()
}

func (w *World) EntityCount() int {
	return w.entities.len()
}

// DispatchMode returns the dispatch mode given to new entities.
func (w *World) DispatchMode() DispatchMode {
	return w.opts.mode
}

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger {
	return w.log
}

// SystemCount returns the number of systems created so far.
func (w *World) SystemCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.systems)
}

// GetEntitySystem returns the world's instance of the system type S,
// creating it from the zero value of S on first use:
//
//	physics := ecs.GetEntitySystem[Physics](world)
//
// Concurrent first calls create a single instance.
func GetEntitySystem[S any, P interface {
	*S
	System
}](w *World) P {
	key := reflect.TypeFor[S]()

	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.systems[key]; ok {
		return s.(P)
	}
	s := P(new(S))
	s.joinWorld(w)
	w.systems[key] = s
	w.log.Debug("system created", zap.Stringer("system", key))
	return s
}
