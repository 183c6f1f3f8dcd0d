package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
)

func TestComputerController(t *testing.T) {
	cases := []struct {
		name      string
		ballX     float64
		ballY     float64
		computerY float64
		prevVY    float64
		wantVY    float64
	}{
		{
			name:  "dead_band_stops_at_center",
			ballX: 100, ballY: 0, computerY: 0, prevVY: 99,
			wantVY: 0,
		},
		{
			name:  "drifts_down_to_center_at_half_speed",
			ballX: 100, ballY: 0, computerY: 200,
			wantVY: -common.ComputerSpeed / 2,
		},
		{
			name:  "drifts_up_to_center_at_half_speed",
			ballX: 100, ballY: 0, computerY: -200,
			wantVY: common.ComputerSpeed / 2,
		},
		{
			name:  "tracks_deep_ball_at_full_speed",
			ballX: -900, ballY: 100, computerY: 0,
			wantVY: common.ComputerSpeed,
		},
		{
			name:  "tracks_deep_ball_downward",
			ballX: -900, ballY: -100, computerY: 0,
			wantVY: -common.ComputerSpeed,
		},
		{
			name:  "tracks_shallow_ball_at_seventy_percent",
			ballX: -100, ballY: 100, computerY: 0,
			wantVY: common.ComputerSpeed * 0.7,
		},
		{
			name:  "equal_y_keeps_previous_velocity",
			ballX: -900, ballY: 50, computerY: 50, prevVY: 123,
			wantVY: 123,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			computer := spawnComputer(w)
			transformOf(t, w, computer).Y = c.computerY
			velocityOf(t, w, computer).Vec.Y = c.prevVY

			ball := spawnBall(w, cp.Vector{})
			tr := transformOf(t, w, ball)
			tr.X, tr.Y = c.ballX, c.ballY

			NewComputerControllerSystem().Update(w)

			if got := velocityOf(t, w, computer).Vec.Y; got != c.wantVY {
				t.Fatalf("velocity.y = %v, want %v", got, c.wantVY)
			}
		})
	}
}

func TestComputerControllerSkipsWithoutSingleBall(t *testing.T) {
	t.Run("no_ball", func(t *testing.T) {
		w := ecs.NewWorld()
		computer := spawnComputer(w)
		velocityOf(t, w, computer).Vec.Y = 42

		NewComputerControllerSystem().Update(w)

		if got := velocityOf(t, w, computer).Vec.Y; got != 42 {
			t.Fatalf("velocity.y = %v, want unchanged 42", got)
		}
	})

	t.Run("two_balls", func(t *testing.T) {
		w := ecs.NewWorld()
		computer := spawnComputer(w)
		velocityOf(t, w, computer).Vec.Y = 42
		spawnBall(w, cp.Vector{})
		spawnBall(w, cp.Vector{})

		NewComputerControllerSystem().Update(w)

		if got := velocityOf(t, w, computer).Vec.Y; got != 42 {
			t.Fatalf("velocity.y = %v, want unchanged 42", got)
		}
	})
}
