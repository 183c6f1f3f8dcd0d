package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/input"
)

// PlayerControllerSystem maps held keys to the player paddle's velocity.
// Up is checked first, so holding both keys moves up.
type PlayerControllerSystem struct {
	Input *input.Input
}

func NewPlayerControllerSystem(in *input.Input) *PlayerControllerSystem {
	return &PlayerControllerSystem{Input: in}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}

	var direction cp.Vector
	if s.Input != nil {
		if s.Input.Up {
			direction.Y = 1
		} else if s.Input.Down {
			direction.Y = -1
		}
	}

	ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v.Vec = direction.Mult(common.PlayerSpeed)
		}
	})
}
