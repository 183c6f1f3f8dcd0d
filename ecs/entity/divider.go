package entity

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewDivider builds the white center line. It has no collider; the ball
// passes through it.
func NewDivider(w *ecs.World) (ecs.Entity, error) {
	img := ebiten.NewImage(2, common.CourtHeight)
	img.Fill(color.White)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("entity: divider transform: %w", err)
	}
	sprite := &component.Sprite{
		Image:   img,
		OriginX: 1,
		OriginY: common.CourtHeight / 2,
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("entity: divider sprite: %w", err)
	}
	return e, nil
}
