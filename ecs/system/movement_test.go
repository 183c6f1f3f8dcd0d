package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
)

func TestMovementIntegration(t *testing.T) {
	cases := []struct {
		name  string
		delta float64
		vel   cp.Vector
		wantX float64
		wantY float64
	}{
		{"full_second", 1.0, cp.Vector{X: 700, Y: -700}, 700, -700},
		{"sixtieth", 1.0 / 60, cp.Vector{X: 600, Y: 0}, 10, 0},
		{"zero_delta", 0, cp.Vector{X: 700, Y: 700}, 0, 0},
		{"at_rest", 0.5, cp.Vector{}, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ball := spawnBall(w, c.vel)

			NewMovementSystem(&common.Clock{Delta: c.delta}).Update(w)

			tr := transformOf(t, w, ball)
			if tr.X != c.wantX || tr.Y != c.wantY {
				t.Fatalf("position = (%v, %v), want (%v, %v)", tr.X, tr.Y, c.wantX, c.wantY)
			}
		})
	}
}

func TestMovementSkipsEntitiesWithoutVelocity(t *testing.T) {
	w := ecs.NewWorld()
	wall := spawnWall(w, common.WallY)

	NewMovementSystem(&common.Clock{Delta: 1}).Update(w)

	if got := transformOf(t, w, wall).Y; got != common.WallY {
		t.Fatalf("wall moved to y=%v, want %v", got, common.WallY)
	}
}
