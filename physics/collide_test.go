package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestDetect(t *testing.T) {
	paddle := cp.Vector{X: 17, Y: 120}
	wall := cp.Vector{X: 1920, Y: 10}
	ball := cp.Vector{X: 30, Y: 30}

	cases := []struct {
		name  string
		aPos  cp.Vector
		aSize cp.Vector
		bPos  cp.Vector
		bSize cp.Vector
		side  Side
		hit   bool
	}{
		{
			name: "ball_hits_paddle_left_side",
			aPos: cp.Vector{X: -20, Y: 0}, aSize: ball,
			bPos: cp.Vector{}, bSize: paddle,
			side: SideLeft, hit: true,
		},
		{
			name: "ball_hits_paddle_right_side",
			aPos: cp.Vector{X: 20, Y: 0}, aSize: ball,
			bPos: cp.Vector{}, bSize: paddle,
			side: SideRight, hit: true,
		},
		{
			name: "ball_hits_wall_top_side",
			aPos: cp.Vector{X: 0, Y: 12}, aSize: ball,
			bPos: cp.Vector{}, bSize: wall,
			side: SideTop, hit: true,
		},
		{
			name: "ball_hits_wall_bottom_side",
			aPos: cp.Vector{X: 0, Y: -12}, aSize: ball,
			bPos: cp.Vector{}, bSize: wall,
			side: SideBottom, hit: true,
		},
		{
			name: "fully_contained_is_inside",
			aPos: cp.Vector{X: 3, Y: -4}, aSize: cp.Vector{X: 10, Y: 10},
			bPos: cp.Vector{}, bSize: cp.Vector{X: 100, Y: 100},
			side: SideInside, hit: true,
		},
		{
			name: "corner_hit_prefers_smaller_penetration",
			// x penetration 20, y penetration 7 -> y axis wins
			aPos: cp.Vector{X: 45, Y: 58}, aSize: ball,
			bPos: cp.Vector{}, bSize: cp.Vector{X: 100, Y: 100},
			side: SideTop, hit: true,
		},
		{
			name: "separated_boxes_do_not_collide",
			aPos: cp.Vector{X: 200, Y: 0}, aSize: ball,
			bPos: cp.Vector{}, bSize: paddle,
			hit: false,
		},
		{
			name: "touching_edges_do_not_collide",
			aPos: cp.Vector{X: 23.5, Y: 0}, aSize: ball,
			bPos: cp.Vector{}, bSize: paddle,
			hit: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			side, hit := Detect(c.aPos, c.aSize, c.bPos, c.bSize)
			if hit != c.hit {
				t.Fatalf("hit = %v, want %v", hit, c.hit)
			}
			if hit && side != c.side {
				t.Fatalf("side = %v, want %v", side, c.side)
			}
		})
	}
}
