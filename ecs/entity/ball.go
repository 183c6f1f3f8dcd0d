package entity

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// BallFactory spawns balls at the origin with a random diagonal direction.
// One factory is shared by startup, respawn, and reset so they all use the
// same random source.
type BallFactory struct {
	image    *ebiten.Image
	collider component.Collider
	rand     *rand.Rand
}

// NewBallFactory loads the ball sprite from its prefab spec. rng must not
// be nil; tests pass a seeded source.
func NewBallFactory(spec prefabs.BallSpec, rng *rand.Rand) (*BallFactory, error) {
	f := &BallFactory{
		collider: component.Circle(spec.Collider.Radius),
		rand:     rng,
	}
	if spec.Sprite.Image != "" {
		img, err := assets.LoadImage(spec.Sprite.Image)
		if err != nil {
			return nil, fmt.Errorf("entity: ball sprite: %w", err)
		}
		f.image = img
	}
	return f, nil
}

// Spawn creates a ball entity at the origin moving at BallSpeed in a fresh
// random diagonal direction.
func (f *BallFactory) Spawn(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("entity: ball transform: %w", err)
	}
	vel := &component.Velocity{Vec: f.Direction().Mult(common.BallSpeed)}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), vel); err != nil {
		return 0, fmt.Errorf("entity: ball velocity: %w", err)
	}
	collider := f.collider
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &collider); err != nil {
		return 0, fmt.Errorf("entity: ball collider: %w", err)
	}
	if err := ecs.Add(w, e, component.BallTagComponent.Kind(), &component.BallTag{}); err != nil {
		return 0, fmt.Errorf("entity: ball tag: %w", err)
	}

	if f.image != nil {
		b := f.image.Bounds()
		sprite := &component.Sprite{
			Image:   f.image,
			OriginX: float64(b.Dx()) / 2,
			OriginY: float64(b.Dy()) / 2,
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
			return 0, fmt.Errorf("entity: ball sprite: %w", err)
		}
	}

	return e, nil
}

// Reload re-reads sprite and collider from an edited spec. Only balls
// spawned afterwards pick up the change.
func (f *BallFactory) Reload(spec prefabs.BallSpec) error {
	f.collider = component.Circle(spec.Collider.Radius)
	if spec.Sprite.Image == "" {
		f.image = nil
		return nil
	}
	img, err := assets.LoadImage(spec.Sprite.Image)
	if err != nil {
		return fmt.Errorf("entity: ball sprite: %w", err)
	}
	f.image = img
	return nil
}

// Direction returns a fresh random diagonal unit vector.
func (f *BallFactory) Direction() cp.Vector {
	return common.DiagonalDirection(f.rand)
}
