package system

import (
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// AwardPointsSystem increments the scoreboard for each BallDestroyed event.
// Only a player-credited score triggers the score sound; a computer score
// is silent. Intentional asymmetry, do not unify.
type AwardPointsSystem struct {
	Scoreboard *common.Scoreboard
}

func NewAwardPointsSystem(scoreboard *common.Scoreboard) *AwardPointsSystem {
	return &AwardPointsSystem{Scoreboard: scoreboard}
}

func (s *AwardPointsSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Scoreboard == nil {
		return
	}

	for _, evt := range w.Events().OfType(ecs.EventBallDestroyed) {
		destroyed, ok := evt.Data.(ecs.BallDestroyed)
		if !ok {
			continue
		}
		if destroyed.PlayerScored {
			s.Scoreboard.Player++
			if _, bank, ok := ecs.First(w, component.AudioComponent.Kind()); ok {
				bank.Trigger("score")
			}
		} else {
			s.Scoreboard.Computer++
		}
	}
}
