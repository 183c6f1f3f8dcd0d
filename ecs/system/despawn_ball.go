package system

import (
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// DespawnBallSystem destroys any ball past a side boundary and emits a
// BallDestroyed event naming the crediting side. The player paddle sits at
// +x, so a ball out past +x is one the player failed to return: it credits
// the computer. Out past -x credits the player.
type DespawnBallSystem struct{}

func NewDespawnBallSystem() *DespawnBallSystem {
	return &DespawnBallSystem{}
}

func (s *DespawnBallSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const edge = common.CourtWidth/2 + common.OutMargin

	ecs.ForEach(w, component.BallTagComponent.Kind(), func(e ecs.Entity, _ *component.BallTag) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		var playerScored bool
		switch {
		case t.X > edge:
			playerScored = false
		case t.X < -edge:
			playerScored = true
		default:
			return
		}

		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{
			Type: ecs.EventBallDestroyed,
			Data: ecs.BallDestroyed{PlayerScored: playerScored},
		})
	})
}
