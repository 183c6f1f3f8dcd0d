package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type SpriteSpec struct {
	Image string `yaml:"image"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type PaddleSpec struct {
	Name     string       `yaml:"name"`
	Sprite   SpriteSpec   `yaml:"sprite"`
	Collider ColliderSpec `yaml:"collider"`
}

type BallSpec struct {
	Name     string       `yaml:"name"`
	Sprite   SpriteSpec   `yaml:"sprite"`
	Collider ColliderSpec `yaml:"collider"`
}

type SoundBankSpec struct {
	Name  string      `yaml:"name"`
	Audio []AudioSpec `yaml:"audio"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadPlayerSpec() (PaddleSpec, error) {
	return LoadSpec[PaddleSpec]("player.yaml")
}

func LoadComputerSpec() (PaddleSpec, error) {
	return LoadSpec[PaddleSpec]("computer.yaml")
}

func LoadBallSpec() (BallSpec, error) {
	return LoadSpec[BallSpec]("ball.yaml")
}

func LoadSoundBankSpec() (SoundBankSpec, error) {
	return LoadSpec[SoundBankSpec]("sounds.yaml")
}
