package system

import (
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// MovementSystem advances every entity carrying a transform and a velocity
// by velocity × elapsed seconds. No acceleration and no clamping; paddles
// can leave the visible area under sustained input.
type MovementSystem struct {
	Clock *common.Clock
}

func NewMovementSystem(clock *common.Clock) *MovementSystem {
	return &MovementSystem{Clock: clock}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Clock == nil {
		return
	}

	dt := s.Clock.Delta
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, v *component.Velocity) {
			t.X += v.Vec.X * dt
			t.Y += v.Vec.Y * dt
		})
}
