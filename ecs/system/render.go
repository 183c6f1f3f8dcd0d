package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// RenderSystem draws every sprite entity. Court space is centered with +y
// up; the screen has its origin at the top left with +y down, so drawing
// maps x → cx + x and y → cy - y.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, s *component.Sprite) {
			if s.Image == nil {
				return
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-s.OriginX, -s.OriginY)
			op.GeoM.Translate(common.CourtWidth/2+t.X, common.CourtHeight/2-t.Y)
			screen.DrawImage(s.Image, op)
		})
}
