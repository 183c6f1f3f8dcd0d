package entity

import (
	"fmt"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewWalls builds the two static wall colliders just above and below the
// court. Walls have no sprite and never score; they only bounce the ball.
func NewWalls(w *ecs.World) error {
	for _, y := range []float64{common.WallY, -common.WallY} {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Y: y}); err != nil {
			return fmt.Errorf("entity: wall transform: %w", err)
		}
		collider := component.Cuboid(common.WallWidth, common.WallHeight)
		if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &collider); err != nil {
			return fmt.Errorf("entity: wall collider: %w", err)
		}
		if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
			return fmt.Errorf("entity: wall tag: %w", err)
		}
	}
	return nil
}
