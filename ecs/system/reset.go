package system

import (
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/input"
)

// ResetSystem zeroes the scoreboard and moves the ball and both paddles
// back to their start positions while the reset key is held. The reset is
// in place: no entity is destroyed or created, so running it twice in a
// row is a no-op apart from the re-randomized ball direction.
type ResetSystem struct {
	Input      *input.Input
	Scoreboard *common.Scoreboard
	Balls      BallSpawner
}

func NewResetSystem(in *input.Input, scoreboard *common.Scoreboard, balls BallSpawner) *ResetSystem {
	return &ResetSystem{Input: in, Scoreboard: scoreboard, Balls: balls}
}

func (s *ResetSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Input == nil || !s.Input.Reset {
		return
	}

	s.Scoreboard.Reset()

	ecs.ForEach(w, component.BallTagComponent.Kind(), func(e ecs.Entity, _ *component.BallTag) {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X, t.Y = 0, 0
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok && s.Balls != nil {
			v.Vec = s.Balls.Direction().Mult(common.BallSpeed)
		}
	})

	ecs.ForEach(w, component.ComputerTagComponent.Kind(), func(e ecs.Entity, _ *component.ComputerTag) {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X, t.Y = -common.PlayerStartX, 0
		}
	})

	ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X, t.Y = common.PlayerStartX, 0
		}
	})
}
