package ecs

import "github.com/milk9111/pong/ecs/component"

// Add attaches a component to an entity, replacing any existing value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.table(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.table(kind.ID(), false).Remove(e.id())
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.table(kind.ID(), false).Has(e.id())
}

// Get returns the entity's component, or (nil, false).
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.table(kind.ID(), false).Get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	t := w.table(kind.ID(), false)
	// snapshot so fn may add or destroy entities mid-iteration
	ids := append([]entityID(nil), t.Entities()...)
	for _, id := range ids {
		e := w.entities.handle(id)
		if !w.entities.isAlive(e) || !t.Has(id) {
			continue
		}
		if c, ok := t.Get(id).(*T); ok && c != nil {
			fn(e, c)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	ta := w.table(ka.ID(), false)
	tb := w.table(kb.ID(), false)
	if ta.Len() == 0 || tb.Len() == 0 {
		return
	}
	ids := append([]entityID(nil), ta.Entities()...)
	for _, id := range ids {
		e := w.entities.handle(id)
		if !w.entities.isAlive(e) || !ta.Has(id) || !tb.Has(id) {
			continue
		}
		a, aok := ta.Get(id).(*A)
		b, bok := tb.Get(id).(*B)
		if aok && bok && a != nil && b != nil {
			fn(e, a, b)
		}
	}
}

// First returns any one live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	if w == nil {
		return 0, nil, false
	}
	t := w.table(kind.ID(), false)
	for _, id := range t.Entities() {
		e := w.entities.handle(id)
		if !w.entities.isAlive(e) {
			continue
		}
		if c, ok := t.Get(id).(*T); ok && c != nil {
			return e, c, true
		}
	}
	return 0, nil, false
}

// Single returns the sole live entity carrying the component. It reports
// false for zero or multiple matches so callers can skip the frame instead
// of acting on ambiguous state.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	if w == nil {
		return 0, nil, false
	}
	t := w.table(kind.ID(), false)
	var (
		found Entity
		value *T
		count int
	)
	for _, id := range t.Entities() {
		e := w.entities.handle(id)
		if !w.entities.isAlive(e) {
			continue
		}
		c, ok := t.Get(id).(*T)
		if !ok || c == nil {
			continue
		}
		count++
		if count > 1 {
			return 0, nil, false
		}
		found, value = e, c
	}
	if count != 1 {
		return 0, nil, false
	}
	return found, value, true
}
