package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// CollisionSoundSystem requests one bounce clip per collision event.
type CollisionSoundSystem struct{}

func NewCollisionSoundSystem() *CollisionSoundSystem {
	return &CollisionSoundSystem{}
}

func (s *CollisionSoundSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for range w.Events().OfType(ecs.EventBallCollided) {
		if _, bank, ok := ecs.First(w, component.AudioComponent.Kind()); ok {
			bank.Trigger("bounce")
		}
	}
}
