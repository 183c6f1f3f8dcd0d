package entity

import (
	"fmt"

	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// NewPlayer builds the player paddle at (+PlayerStartX, 0).
func NewPlayer(w *ecs.World, spec prefabs.PaddleSpec) (ecs.Entity, error) {
	return newPaddle(w, spec, common.PlayerStartX, component.PlayerTagComponent)
}

// NewComputer builds the computer paddle at (-PlayerStartX, 0).
func NewComputer(w *ecs.World, spec prefabs.PaddleSpec) (ecs.Entity, error) {
	return newPaddle(w, spec, -common.PlayerStartX, component.ComputerTagComponent)
}

func newPaddle[T any](w *ecs.World, spec prefabs.PaddleSpec, startX float64, tag component.ComponentHandle[T]) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: startX}); err != nil {
		return 0, fmt.Errorf("entity: paddle %q transform: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("entity: paddle %q velocity: %w", spec.Name, err)
	}
	collider := component.Cuboid(spec.Collider.Width, spec.Collider.Height)
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &collider); err != nil {
		return 0, fmt.Errorf("entity: paddle %q collider: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, tag.Kind(), new(T)); err != nil {
		return 0, fmt.Errorf("entity: paddle %q tag: %w", spec.Name, err)
	}

	if spec.Sprite.Image != "" {
		img, err := assets.LoadImage(spec.Sprite.Image)
		if err != nil {
			return 0, fmt.Errorf("entity: paddle %q sprite: %w", spec.Name, err)
		}
		b := img.Bounds()
		sprite := &component.Sprite{
			Image:   img,
			OriginX: float64(b.Dx()) / 2,
			OriginY: float64(b.Dy()) / 2,
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
			return 0, fmt.Errorf("entity: paddle %q sprite: %w", spec.Name, err)
		}
	}

	return e, nil
}
