package ecs

import "github.com/milk9111/pong/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component tables, system order, and the per-frame
// event queue. Systems run in registration order; the event queue is
// flushed after the last system, so events pushed by an earlier phase are
// visible to every later phase within the same frame.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue
	tables   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{tables: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity marks an entity as dead and drops its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, t := range w.tables {
		t.Remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then flushes the event queue.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) table(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	if w.tables == nil {
		if !create {
			return nil
		}
		w.tables = make(map[component.ComponentID]*SparseSet)
	}
	t, ok := w.tables[id]
	if !ok && create {
		t = &SparseSet{}
		w.tables[id] = t
	}
	return t
}
