package ecs

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// directory indexes a world's entities by id. Entities are spread over
// shards by the hash of their id so concurrent CreateEntity calls rarely
// contend on the same lock.
type directory struct {
	shards []directoryShard
}

type directoryShard struct {
	mx       sync.RWMutex
	entities map[uuid.UUID]*Entity
}

func newDirectory(shardCount int) *directory {
	if shardCount <= 0 {
		shardCount = defaultEntityShards
	}
	d := &directory{shards: make([]directoryShard, shardCount)}
	for i := range d.shards {
		d.shards[i].entities = make(map[uuid.UUID]*Entity)
	}
	return d
}

func (d *directory) shardFor(id uuid.UUID) *directoryShard {
	return &d.shards[xxhash.Sum64(id[:])%uint64(len(d.shards))]
}

func (d *directory) add(e *Entity) {
	sh := d.shardFor(e.id)
	sh.mx.Lock()
	sh.entities[e.id] = e
	sh.mx.Unlock()
}

func (d *directory) get(id uuid.UUID) (*Entity, bool) {
	sh := d.shardFor(id)
	sh.mx.RLock()
	defer sh.mx.RUnlock()
	e, ok := sh.entities[id]
	return e, ok
}

func (d *directory) len() int {
	n := 0
	for i := range d.shards {
		sh := &d.shards[i]
		sh.mx.RLock()
		n += len(sh.entities)
		sh.mx.RUnlock()
	}
	return n
}

func (d *directory) all() []*Entity {
	out := make([]*Entity, 0, d.len())
	for i := range d.shards {
		sh := &d.shards[i]
		sh.mx.RLock()
		for _, e := range sh.entities {
			out = append(out, e)
		}
		sh.mx.RUnlock()
	}
	return out
}
