package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds a bank of named clips. Systems request playback by flipping
// Play; the audio system consumes the flags each frame.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
}

// Trigger requests a play-once of the named clip. Unknown names are a
// no-op.
func (a *Audio) Trigger(name string) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return
		}
	}
}

var AudioComponent = NewComponent[Audio]()
