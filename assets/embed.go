package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed sprites/*.png sounds/*.wav
var assetsFS embed.FS

var audioContext = audio.NewContext(44100)

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %q: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadAudioPlayer loads an embedded wav asset and creates a player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %q: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
	}
	player, err := audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: player %q: %w", path, err)
	}
	return player, nil
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
