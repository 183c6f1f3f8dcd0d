package system

import (
	"math"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// ComputerControllerSystem drives the computer paddle with a reactive rule
// table evaluated fresh every frame:
//
//   - ball on the player's half (x > 0): drift toward vertical center at
//     half speed, stopping inside the |y| < ComputerDeadBand band;
//   - ball on the computer's half: chase ball.y at 70% speed, ramping to
//     full speed once the ball is past ComputerRampX into computer
//     territory. Equal y leaves the previous velocity untouched.
type ComputerControllerSystem struct{}

func NewComputerControllerSystem() *ComputerControllerSystem {
	return &ComputerControllerSystem{}
}

func (s *ComputerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	// skip the frame when the ball is respawning or duplicated
	ballEntity, _, ok := ecs.Single(w, component.BallTagComponent.Kind())
	if !ok {
		return
	}
	ball, ok := ecs.Get(w, ballEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach(w, component.ComputerTagComponent.Kind(), func(e ecs.Entity, _ *component.ComputerTag) {
		t, tok := ecs.Get(w, e, component.TransformComponent.Kind())
		v, vok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !tok || !vok {
			return
		}

		if ball.X > 0 {
			switch {
			case math.Abs(t.Y) < common.ComputerDeadBand:
				v.Vec.Y = 0
			case t.Y < 0:
				v.Vec.Y = common.ComputerSpeed / 2
			default:
				v.Vec.Y = -common.ComputerSpeed / 2
			}
			return
		}

		speed := common.ComputerSpeed
		if ball.X > -common.ComputerRampX {
			speed = common.ComputerSpeed * 0.7
		}

		if ball.Y < t.Y {
			v.Vec.Y = -speed
		} else if ball.Y > t.Y {
			v.Vec.Y = speed
		}
	})
}
