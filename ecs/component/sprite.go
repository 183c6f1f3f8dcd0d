package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite stores render data. OriginX/Y is the point of the image drawn at
// the entity's transform, normally the image center.
type Sprite struct {
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
