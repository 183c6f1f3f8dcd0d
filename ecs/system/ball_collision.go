package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/physics"
)

// BallCollisionSystem tests the ball against every other collider and
// bounces it by negating the crossed velocity axis. It runs before the
// movement integrator, so the test uses last frame's positions; the ball
// may overlap a paddle for one frame before its direction flips. Known
// characteristic, not a bug.
type BallCollisionSystem struct{}

func NewBallCollisionSystem() *BallCollisionSystem {
	return &BallCollisionSystem{}
}

func (s *BallCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ballEntity, _, ok := ecs.Single(w, component.BallTagComponent.Kind())
	if !ok {
		return
	}
	ballTransform, tok := ecs.Get(w, ballEntity, component.TransformComponent.Kind())
	ballCollider, cok := ecs.Get(w, ballEntity, component.ColliderComponent.Kind())
	ballVelocity, vok := ecs.Get(w, ballEntity, component.VelocityComponent.Kind())
	if !tok || !cok || !vok {
		return
	}

	ballPos := cp.Vector{X: ballTransform.X, Y: ballTransform.Y}
	ballSize := cp.Vector{X: ballCollider.Width, Y: ballCollider.Height}

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, collider *component.Collider, transform *component.Transform) {
			if e == ballEntity {
				return
			}

			side, hit := physics.Detect(
				ballPos,
				ballSize,
				cp.Vector{X: transform.X, Y: transform.Y},
				cp.Vector{X: collider.Width, Y: collider.Height},
			)
			if !hit {
				return
			}

			w.Events().Push(ecs.Event{Type: ecs.EventBallCollided})

			switch side {
			case physics.SideLeft, physics.SideRight:
				ballVelocity.Vec.X *= -1
			case physics.SideTop, physics.SideBottom:
				ballVelocity.Vec.Y *= -1
			case physics.SideInside:
				// fully contained, nothing to flip
			}
		})
}
