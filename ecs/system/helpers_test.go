package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// stubSpawner builds spriteless balls with a deterministic random source.
type stubSpawner struct {
	rand *rand.Rand
}

func newStubSpawner(seed int64) *stubSpawner {
	return &stubSpawner{rand: rand.New(rand.NewSource(seed))}
}

func (s *stubSpawner) Direction() cp.Vector {
	return common.DiagonalDirection(s.rand)
}

func (s *stubSpawner) Spawn(w *ecs.World) (ecs.Entity, error) {
	return spawnBall(w, s.Direction().Mult(common.BallSpeed)), nil
}

func spawnBall(w *ecs.World, vel cp.Vector) ecs.Entity {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{})
	mustAdd(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vec: vel})
	collider := component.Circle(15)
	mustAdd(w, e, component.ColliderComponent.Kind(), &collider)
	mustAdd(w, e, component.BallTagComponent.Kind(), &component.BallTag{})
	return e
}

func spawnPlayer(w *ecs.World) ecs.Entity {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{X: common.PlayerStartX})
	mustAdd(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	collider := component.Cuboid(17, 120)
	mustAdd(w, e, component.ColliderComponent.Kind(), &collider)
	mustAdd(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	return e
}

func spawnComputer(w *ecs.World) ecs.Entity {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{X: -common.PlayerStartX})
	mustAdd(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	collider := component.Cuboid(17, 120)
	mustAdd(w, e, component.ColliderComponent.Kind(), &collider)
	mustAdd(w, e, component.ComputerTagComponent.Kind(), &component.ComputerTag{})
	return e
}

func spawnWall(w *ecs.World, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{Y: y})
	collider := component.Cuboid(common.WallWidth, common.WallHeight)
	mustAdd(w, e, component.ColliderComponent.Kind(), &collider)
	mustAdd(w, e, component.WallTagComponent.Kind(), &component.WallTag{})
	return e
}

func spawnSoundBank(w *ecs.World) *component.Audio {
	e := ecs.CreateEntity(w)
	bank := &component.Audio{
		Names: []string{"bounce", "score"},
		Play:  []bool{false, false},
	}
	mustAdd(w, e, component.AudioComponent.Kind(), bank)
	return bank
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	if err := ecs.Add(w, e, kind, v); err != nil {
		panic(err)
	}
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func velocityOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Velocity {
	t.Helper()
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no velocity", e)
	}
	return v
}

func ballCount(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.BallTagComponent.Kind(), func(ecs.Entity, *component.BallTag) { n++ })
	return n
}
