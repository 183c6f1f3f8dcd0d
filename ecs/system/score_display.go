package system

import (
	"strconv"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// ScoreDisplaySystem mirrors the scoreboard into the HUD labels every
// frame.
type ScoreDisplaySystem struct {
	Scoreboard *common.Scoreboard
}

func NewScoreDisplaySystem(scoreboard *common.Scoreboard) *ScoreDisplaySystem {
	return &ScoreDisplaySystem{Scoreboard: scoreboard}
}

func (s *ScoreDisplaySystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Scoreboard == nil {
		return
	}

	ecs.ForEach(w, component.ScoreDisplayComponent.Kind(), func(_ ecs.Entity, d *component.ScoreDisplay) {
		if d.Label == nil {
			return
		}
		if d.Player {
			d.Label.Label = strconv.FormatUint(uint64(s.Scoreboard.Player), 10)
		} else {
			d.Label.Label = strconv.FormatUint(uint64(s.Scoreboard.Computer), 10)
		}
	})
}
