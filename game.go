package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/ecs/system"
	"github.com/milk9111/pong/input"
	"github.com/milk9111/pong/prefabs"
)

// maxDelta caps a frame's elapsed time so the ball cannot tunnel through a
// paddle after the window was suspended.
const maxDelta = 0.25

type Game struct {
	world      *ecs.World
	input      *input.Input
	clock      *common.Clock
	scoreboard *common.Scoreboard
	balls      *entity.BallFactory
	render     *system.RenderSystem
	hud        *ScoreHUD

	player   ecs.Entity
	computer ecs.Entity

	watcher   *prefabs.Watcher
	lastFrame time.Time
	debug     bool
}

func NewGame(debug bool) (*Game, error) {
	w := ecs.NewWorld()

	hud, err := NewScoreHUD()
	if err != nil {
		return nil, err
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	computerSpec, err := prefabs.LoadComputerSpec()
	if err != nil {
		return nil, err
	}
	ballSpec, err := prefabs.LoadBallSpec()
	if err != nil {
		return nil, err
	}
	soundSpec, err := prefabs.LoadSoundBankSpec()
	if err != nil {
		return nil, err
	}

	player, err := entity.NewPlayer(w, playerSpec)
	if err != nil {
		return nil, err
	}
	computer, err := entity.NewComputer(w, computerSpec)
	if err != nil {
		return nil, err
	}
	if err := entity.NewWalls(w); err != nil {
		return nil, err
	}
	if _, err := entity.NewDivider(w); err != nil {
		return nil, err
	}
	if _, err := entity.NewSoundBank(w, soundSpec.Audio); err != nil {
		return nil, err
	}
	if _, err := entity.NewScoreDisplay(w, true, hud.Player); err != nil {
		return nil, err
	}
	if _, err := entity.NewScoreDisplay(w, false, hud.Computer); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	balls, err := entity.NewBallFactory(ballSpec, rng)
	if err != nil {
		return nil, err
	}
	if _, err := balls.Spawn(w); err != nil {
		return nil, err
	}

	in := input.New()
	clock := &common.Clock{}
	scoreboard := &common.Scoreboard{}

	// phase order: controllers -> collisions -> integration -> despawn ->
	// award -> respawn -> display -> sounds
	w.AddSystem(system.NewResetSystem(in, scoreboard, balls))
	w.AddSystem(system.NewPlayerControllerSystem(in))
	w.AddSystem(system.NewComputerControllerSystem())
	w.AddSystem(system.NewBallCollisionSystem())
	w.AddSystem(system.NewMovementSystem(clock))
	w.AddSystem(system.NewDespawnBallSystem())
	w.AddSystem(system.NewAwardPointsSystem(scoreboard))
	w.AddSystem(system.NewRespawnBallSystem(balls))
	w.AddSystem(system.NewScoreDisplaySystem(scoreboard))
	w.AddSystem(system.NewCollisionSoundSystem())
	w.AddSystem(system.NewAudioSystem())

	g := &Game{
		world:      w,
		input:      in,
		clock:      clock,
		scoreboard: scoreboard,
		balls:      balls,
		render:     system.NewRenderSystem(),
		hud:        hud,
		player:     player,
		computer:   computer,
		debug:      debug,
	}

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.Quit {
		return ebiten.Termination
	}

	g.pollPrefabEdits()

	now := time.Now()
	if !g.lastFrame.IsZero() {
		delta := now.Sub(g.lastFrame).Seconds()
		if delta > maxDelta {
			delta = maxDelta
		}
		g.clock.Delta = delta
	}
	g.lastFrame = now

	g.world.Update()
	g.hud.UI.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.UI.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.CourtWidth, common.CourtHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) pollPrefabEdits() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.reloadPrefabs(); err != nil {
				log.Printf("reload prefabs after %s: %v", name, err)
			}
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reloadPrefabs() error {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	if err := g.applyPaddleSpec(g.player, playerSpec); err != nil {
		return err
	}

	computerSpec, err := prefabs.LoadComputerSpec()
	if err != nil {
		return err
	}
	if err := g.applyPaddleSpec(g.computer, computerSpec); err != nil {
		return err
	}

	ballSpec, err := prefabs.LoadBallSpec()
	if err != nil {
		return err
	}
	return g.balls.Reload(ballSpec)
}

func (g *Game) applyPaddleSpec(e ecs.Entity, spec prefabs.PaddleSpec) error {
	if !ecs.IsAlive(g.world, e) {
		return errors.New("paddle entity not alive")
	}
	if c, ok := ecs.Get(g.world, e, component.ColliderComponent.Kind()); ok {
		*c = component.Cuboid(spec.Collider.Width, spec.Collider.Height)
	}
	if spec.Sprite.Image == "" {
		return nil
	}
	img, err := assets.LoadImage(spec.Sprite.Image)
	if err != nil {
		return err
	}
	if s, ok := ecs.Get(g.world, e, component.SpriteComponent.Kind()); ok {
		b := img.Bounds()
		s.Image = img
		s.OriginX = float64(b.Dx()) / 2
		s.OriginY = float64(b.Dy()) / 2
	}
	return nil
}
