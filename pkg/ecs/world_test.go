package ecs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/corgecs/pkg/sequence"
)

type memberComponent struct {
	Base
	tested bool
}

func (c *memberComponent) Initialise() {
	GetEntitySystem[memberSystem](c.World()).JoinSystem(c)
}

type memberSystem struct {
	EntitySystem[*memberComponent]
}

type otherSystem struct {
	EntitySystem[*memberComponent]
}

func TestSystems(t *testing.T) {
	world := NewWorld()
	e := world.CreateEntity().WithComponent(&memberComponent{})

	GetEntitySystem[memberSystem](world).
		Components().
		ForEach(func(c *memberComponent) { c.tested = true })

	c, ok := GetComponent[*memberComponent](e)
	require.True(t, ok)
	assert.True(t, c.tested)
}

func TestGetEntitySystemReturnsSameInstance(t *testing.T) {
	world := NewWorld()
	a := GetEntitySystem[memberSystem](world)
	b := GetEntitySystem[memberSystem](world)
	assert.Same(t, a, b)
	assert.Same(t, world, a.World())

	other := GetEntitySystem[otherSystem](world)
	assert.NotSame(t, &a.EntitySystem, &other.EntitySystem)
	assert.Equal(t, 2, world.SystemCount())
}

func TestGetEntitySystemConcurrentFirstAccess(t *testing.T) {
	world := NewWorld()
	const n = 64

	got := make([]*memberSystem, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			got[i] = GetEntitySystem[memberSystem](world)
		}()
	}
	close(start)
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
	assert.Equal(t, 1, world.SystemCount())
}

func TestWorldsAreIndependent(t *testing.T) {
	w1 := NewWorld()
	w2 := NewWorld()
	s1 := GetEntitySystem[memberSystem](w1)
	s2 := GetEntitySystem[memberSystem](w2)
	assert.NotSame(t, s1, s2)
	assert.Same(t, w1, s1.World())
	assert.Same(t, w2, s2.World())

	w1.CreateEntity().WithComponent(&memberComponent{})
	assert.Equal(t, 1, s1.Len())
	assert.Equal(t, 0, s2.Len())
}

func TestJoinSystemIsIdempotent(t *testing.T) {
	world := NewWorld()
	c := &memberComponent{}
	world.CreateEntity().WithComponent(c)

	sys := GetEntitySystem[memberSystem](world)
	sys.JoinSystem(c)
	sys.JoinSystem(c)
	assert.Equal(t, 1, sys.Len())
	assert.True(t, sys.Contains(c))
	assert.False(t, sys.Contains(&memberComponent{}))
}

func TestSystemComponentsRestartable(t *testing.T) {
	world := NewWorld()
	want := make([]*memberComponent, 0, 5)
	for range 5 {
		c := &memberComponent{}
		world.CreateEntity().WithComponent(c)
		want = append(want, c)
	}

	it := GetEntitySystem[memberSystem](world).Components()
	for range 2 {
		assert.ElementsMatch(t, want, it.Collect())
		assert.Equal(t, 5, it.Count())
	}
	assert.True(t, sequence.Contains(it, want[3]))
}

func TestZeroValueSystem(t *testing.T) {
	var sys EntitySystem[*memberComponent]
	assert.Equal(t, 0, sys.Len())
	assert.Equal(t, 0, sys.Components().Count())
	assert.Nil(t, sys.World())
}

func TestConcurrentJoin(t *testing.T) {
	world := NewWorld()
	sys := GetEntitySystem[memberSystem](world)
	members := make([]*memberComponent, 100)
	for i := range members {
		members[i] = &memberComponent{}
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, m := range members {
				sys.JoinSystem(m)
				_ = sys.Len()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, len(members), sys.Len())
}

func TestEntityDirectory(t *testing.T) {
	world := NewWorld(WithEntityShards(4))
	created := make(map[uuid.UUID]*Entity)
	for range 50 {
		e := world.CreateEntity()
		created[e.ID()] = e
	}

	assert.Equal(t, 50, world.EntityCount())
	assert.Len(t, world.Entities(), 50)
	for id, e := range created {
		got, ok := world.Entity(id)
		require.True(t, ok)
		assert.Same(t, e, got)
	}

	_, ok := world.Entity(uuid.New())
	assert.False(t, ok)
}

func TestConcurrentCreateEntity(t *testing.T) {
	world := NewWorld()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				world.CreateEntity()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, world.EntityCount())
}

func TestWorldOptions(t *testing.T) {
	world := NewWorld(WithDispatchMode(DispatchSnapshot), WithLogger(nil), WithEntityShards(0), WithBroadcastWorkers(-1))
	assert.Equal(t, DispatchSnapshot, world.DispatchMode())
	assert.Equal(t, DispatchSnapshot, world.CreateEntity().signals.mode)
	assert.NotNil(t, world.Logger())
	assert.Equal(t, defaultBroadcastWorkers, world.opts.workers)
	assert.Len(t, world.entities.shards, defaultEntityShards)
}

func TestParseDispatchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    DispatchMode
		wantErr bool
	}{
		{in: "", want: DispatchLocked},
		{in: "locked", want: DispatchLocked},
		{in: " Snapshot ", want: DispatchSnapshot},
		{in: "parallel", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDispatchMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "DispatchMode(9)", DispatchMode(9).String())
}

func TestBroadcast(t *testing.T) {
	world := NewWorld(WithBroadcastWorkers(3))
	var hits atomic.Int64
	perEntity := make([]*atomic.Int32, 20)
	for i := range perEntity {
		counter := &atomic.Int32{}
		perEntity[i] = counter
		world.CreateEntity().WithComponent(&funcComponent{init: func(c *funcComponent) {
			RegisterSignal(c, func(d damaged) {
				hits.Add(int64(d.Amount))
				counter.Add(1)
			})
		}})
	}
	// Entities without handlers are skipped silently.
	world.CreateEntity()

	require.NoError(t, Broadcast(context.Background(), world, damaged{Amount: 2}))
	assert.Equal(t, int64(40), hits.Load())
	for _, c := range perEntity {
		assert.Equal(t, int32(1), c.Load())
	}
}

func TestBroadcastReportsPanics(t *testing.T) {
	world := NewWorld()
	var ok atomic.Int32
	for i := range 6 {
		world.CreateEntity().WithComponent(&funcComponent{init: func(c *funcComponent) {
			RegisterSignal(c, func(testSignal) {
				if i%2 == 0 {
					panic("bad handler")
				}
				ok.Add(1)
			})
		}})
	}

	err := Broadcast(context.Background(), world, testSignal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandlerPanic)
	assert.Len(t, err.(interface{ Unwrap() []error }).Unwrap(), 3)
	assert.Equal(t, int32(3), ok.Load())
}

func TestBroadcastCancelled(t *testing.T) {
	world := NewWorld()
	var calls atomic.Int32
	for range 5 {
		world.CreateEntity().WithComponent(&funcComponent{init: func(c *funcComponent) {
			RegisterSignal(c, func(testSignal) { calls.Add(1) })
		}})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Broadcast(ctx, world, testSignal{})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, calls.Load())
}
