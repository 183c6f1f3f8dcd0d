package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

func newScoringWorld(t *testing.T) (*ecs.World, *common.Scoreboard, *component.Audio) {
	t.Helper()
	w := ecs.NewWorld()
	scoreboard := &common.Scoreboard{}
	bank := spawnSoundBank(w)

	w.AddSystem(NewDespawnBallSystem())
	w.AddSystem(NewAwardPointsSystem(scoreboard))
	w.AddSystem(NewRespawnBallSystem(newStubSpawner(1)))
	return w, scoreboard, bank
}

func TestScoringBoundary(t *testing.T) {
	cases := []struct {
		name         string
		ballX        float64
		wantPlayer   uint32
		wantComputer uint32
		wantScoreSFX bool
	}{
		// the player paddle sits at +x: a ball out past +x is one the
		// player failed to return, so the computer is credited
		{"exit_right_credits_computer", 975, 0, 1, false},
		{"exit_left_credits_player", -975, 1, 0, true},
		{"in_play_no_score", 100, 0, 0, false},
		{"at_edge_not_out", common.CourtWidth/2 + common.OutMargin, 0, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, scoreboard, bank := newScoringWorld(t)
			old := spawnBall(w, cp.Vector{X: 700, Y: 0})
			transformOf(t, w, old).X = c.ballX

			w.Update()

			if scoreboard.Player != c.wantPlayer || scoreboard.Computer != c.wantComputer {
				t.Fatalf("scoreboard = %d/%d, want %d/%d",
					scoreboard.Player, scoreboard.Computer, c.wantPlayer, c.wantComputer)
			}
			if ballCount(w) != 1 {
				t.Fatalf("ball count = %d, want exactly 1", ballCount(w))
			}

			scored := c.wantPlayer+c.wantComputer > 0
			if scored {
				if ecs.IsAlive(w, old) {
					t.Fatal("out-of-bounds ball should be destroyed")
				}
				ball, _, ok := ecs.Single(w, component.BallTagComponent.Kind())
				if !ok {
					t.Fatal("expected a respawned ball")
				}
				tr := transformOf(t, w, ball)
				if tr.X != 0 || tr.Y != 0 {
					t.Fatalf("respawned ball at (%v, %v), want origin", tr.X, tr.Y)
				}
				speed := velocityOf(t, w, ball).Vec.Length()
				if math.Abs(speed-common.BallSpeed) > 1e-6 {
					t.Fatalf("respawned ball speed = %v, want %v", speed, common.BallSpeed)
				}
			} else if !ecs.IsAlive(w, old) {
				t.Fatal("in-play ball should survive")
			}

			// score sound fires only when the player scores
			if got := bank.Play[1]; got != c.wantScoreSFX {
				t.Fatalf("score sound flag = %v, want %v", got, c.wantScoreSFX)
			}
		})
	}
}

func TestScoreMonotonicity(t *testing.T) {
	w, scoreboard, _ := newScoringWorld(t)
	spawnBall(w, cp.Vector{X: 700, Y: 0})

	var lastPlayer, lastComputer uint32
	for frame := 0; frame < 20; frame++ {
		// shove the live ball out on alternating sides every few frames
		if frame%4 == 0 {
			if ball, _, ok := ecs.Single(w, component.BallTagComponent.Kind()); ok {
				tr := transformOf(t, w, ball)
				if frame%8 == 0 {
					tr.X = 980
				} else {
					tr.X = -980
				}
			}
		}

		w.Update()

		if scoreboard.Player < lastPlayer || scoreboard.Computer < lastComputer {
			t.Fatalf("frame %d: scoreboard went backwards (%d/%d -> %d/%d)",
				frame, lastPlayer, lastComputer, scoreboard.Player, scoreboard.Computer)
		}
		lastPlayer, lastComputer = scoreboard.Player, scoreboard.Computer

		if ballCount(w) != 1 {
			t.Fatalf("frame %d: ball count = %d, want exactly 1", frame, ballCount(w))
		}
	}

	if scoreboard.Player == 0 || scoreboard.Computer == 0 {
		t.Fatalf("expected both sides to score, got %d/%d", scoreboard.Player, scoreboard.Computer)
	}
}
