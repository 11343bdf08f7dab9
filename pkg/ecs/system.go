package ecs

import (
	"sync"

	"github.com/zeusync/corgecs/pkg/sequence"
)

// System is implemented by structs embedding EntitySystem. A world holds at
// most one instance of each concrete system type, see GetEntitySystem.
type System interface {
	World() *World

	joinWorld(w *World)
}

// EntitySystem collects the components of type C that joined it. Concrete
// systems embed it:
//
//	type Physics struct {
//		ecs.EntitySystem[*Body]
//	}
//
// The zero value is ready to use.
type EntitySystem[C interface {
	comparable
	Component
}] struct {
	world *World

	mu      sync.RWMutex
	members map[C]struct{}
}

// World returns the world the system belongs to.
func (s *EntitySystem[C]) World() *World { return s.world }

func (s *EntitySystem[C]) joinWorld(w *World) { s.world = w }

// JoinSystem adds c to the system. Joining twice has no effect.
func (s *EntitySystem[C]) JoinSystem(c C) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.members == nil {
		s.members = make(map[C]struct{})
	}
	s.members[c] = struct{}{}
}

// Contains reports whether c joined the system.
func (s *EntitySystem[C]) Contains(c C) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.members[c]
	return ok
}

// Len returns the number of members.
func (s *EntitySystem[C]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// Components returns an iterator over a snapshot of the members. The order
// is unspecified.
func (s *EntitySystem[C]) Components() *sequence.Iterator[C] {
	s.mu.RLock()
	out := make([]C, 0, len(s.members))
	for c := range s.members {
		out = append(out, c)
	}
	s.mu.RUnlock()
	return sequence.From(out)
}
