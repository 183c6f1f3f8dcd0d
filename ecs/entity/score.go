package entity

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewScoreDisplay builds an entity mirroring one scoreboard counter into a
// HUD label.
func NewScoreDisplay(w *ecs.World, player bool, label *widget.Text) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	display := &component.ScoreDisplay{Player: player, Label: label}
	if err := ecs.Add(w, e, component.ScoreDisplayComponent.Kind(), display); err != nil {
		return 0, fmt.Errorf("entity: score display: %w", err)
	}
	return e, nil
}
