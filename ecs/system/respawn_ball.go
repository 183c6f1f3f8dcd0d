package system

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/pong/ecs"
)

// BallSpawner spawns and aims fresh balls.
type BallSpawner interface {
	Spawn(w *ecs.World) (ecs.Entity, error)
	Direction() cp.Vector
}

// RespawnBallSystem spawns one fresh ball per BallDestroyed event, in the
// same frame the old ball was destroyed, keeping exactly one ball alive at
// the start of every frame.
type RespawnBallSystem struct {
	Balls BallSpawner
}

func NewRespawnBallSystem(balls BallSpawner) *RespawnBallSystem {
	return &RespawnBallSystem{Balls: balls}
}

func (s *RespawnBallSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Balls == nil {
		return
	}

	for range w.Events().OfType(ecs.EventBallDestroyed) {
		if _, err := s.Balls.Spawn(w); err != nil {
			log.Printf("respawn ball: %v", err)
		}
	}
}
