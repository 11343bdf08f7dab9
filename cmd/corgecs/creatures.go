package main

import (
	"github.com/zeusync/corgecs/pkg/ecs"
	"github.com/zeusync/corgecs/pkg/signals"
)

// Damaged lowers the health of the entity it is raised on.
type Damaged struct {
	signals.Void
	Amount int
}

// Tick is broadcast once per simulation step.
type Tick struct {
	signals.Void
}

// QueryDefense asks every armor piece for its defense value.
type QueryDefense struct {
	signals.Returns[int]
}

// QueryHealth asks for the current hit points.
type QueryHealth struct {
	signals.Returns[int]
}

type Health struct {
	ecs.Base
	HP, Max int
}

func (h *Health) Initialise() {
	ecs.RegisterSignal(h, func(d Damaged) {
		h.HP = max(0, h.HP-d.Amount)
	})
	ecs.RegisterRequest(h, func(QueryHealth) *signals.Result[int] {
		return signals.NewResult(h.HP)
	})
}

type Armor struct {
	ecs.Base
	Defense int
}

func (a *Armor) Initialise() {
	ecs.RegisterRequest(a, func(QueryDefense) *signals.Result[int] {
		if a.Defense == 0 {
			return nil
		}
		return signals.NewResult(a.Defense)
	})
}

// Regeneration heals its entity on every Tick.
type Regeneration struct {
	ecs.Base
	PerTick int
}

func (r *Regeneration) Initialise() {
	ecs.GetEntitySystem[RegenerationSystem](r.World()).JoinSystem(r)
	ecs.RegisterSignal(r, func(Tick) {
		if h, ok := ecs.GetComponent[*Health](r.Parent()); ok {
			h.HP = min(h.Max, h.HP+r.PerTick)
		}
	})
}

type RegenerationSystem struct {
	ecs.EntitySystem[*Regeneration]
}

// Attack raises Damaged on e reduced by the summed defense of its armor and
// returns the damage dealt.
func Attack(e *ecs.Entity, power int) int {
	defense := 0
	ecs.RaiseRequest[QueryDefense, int](e, QueryDefense{}).Each(func(v int) { defense += v })
	dealt := max(0, power-defense)
	ecs.Raise(e, Damaged{Amount: dealt})
	return dealt
}
