// Package input polls keyboard state once per frame for the systems.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the current frame's key state.
type Input struct {
	// Up and Down are true while W / S are held.
	Up   bool
	Down bool
	// Reset is true while R is held.
	Reset bool
	// Quit is true on the frame Escape is pressed.
	Quit bool
}

func New() *Input {
	return &Input{}
}

// Update polls the keyboard.
func (i *Input) Update() {
	if i == nil {
		return
	}
	i.Up = ebiten.IsKeyPressed(ebiten.KeyW)
	i.Down = ebiten.IsKeyPressed(ebiten.KeyS)
	i.Reset = ebiten.IsKeyPressed(ebiten.KeyR)
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
