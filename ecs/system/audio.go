package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// AudioSystem consumes Play flags and fires the matching clips.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, bank *component.Audio) {
		count := len(bank.Play)
		if len(bank.Players) < count {
			count = len(bank.Players)
		}

		for i := 0; i < count; i++ {
			if !bank.Play[i] {
				continue
			}

			player := bank.Players[i]
			if player != nil && !player.IsPlaying() {
				player.SetVolume(bank.Volume[i])
				player.Rewind()
				player.Play()
			}

			bank.Play[i] = false
		}
	})
}
