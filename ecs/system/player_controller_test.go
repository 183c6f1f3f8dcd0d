package system

import (
	"testing"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/input"
)

func TestPlayerController(t *testing.T) {
	cases := []struct {
		name   string
		up     bool
		down   bool
		wantVY float64
	}{
		{"idle", false, false, 0},
		{"up", true, false, common.PlayerSpeed},
		{"down", false, true, -common.PlayerSpeed},
		// up is checked first, so it wins when both keys are held
		{"both_up_wins", true, true, common.PlayerSpeed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := spawnPlayer(w)
			// stale velocity from the previous frame must be overwritten
			velocityOf(t, w, player).Vec.Y = -123

			in := &input.Input{Up: c.up, Down: c.down}
			NewPlayerControllerSystem(in).Update(w)

			v := velocityOf(t, w, player)
			if v.Vec.Y != c.wantVY {
				t.Fatalf("velocity.y = %v, want %v", v.Vec.Y, c.wantVY)
			}
			if v.Vec.X != 0 {
				t.Fatalf("velocity.x = %v, want 0 (paddle x is fixed)", v.Vec.X)
			}
		})
	}
}
