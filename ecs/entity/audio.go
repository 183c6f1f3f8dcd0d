package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// NewSoundBank builds the entity holding every sound clip the game plays.
func NewSoundBank(w *ecs.World, specs []prefabs.AudioSpec) (ecs.Entity, error) {
	n := len(specs)
	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)
	play := make([]bool, 0, n)

	for i, clip := range specs {
		player, err := assets.LoadAudioPlayer(clip.File)
		if err != nil {
			return 0, fmt.Errorf("entity: audio clip %d (%q): %w", i, clip.Name, err)
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
		play = append(play, false)
	}

	e := ecs.CreateEntity(w)
	bank := &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    play,
	}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), bank); err != nil {
		return 0, fmt.Errorf("entity: sound bank: %w", err)
	}
	return e, nil
}
