package component

import "github.com/ebitenui/ebitenui/widget"

// ScoreDisplay marks a HUD label that mirrors one scoreboard counter.
// Player selects which counter; Label is the ebitenui text widget.
type ScoreDisplay struct {
	Player bool
	Label  *widget.Text
}

var ScoreDisplayComponent = NewComponent[ScoreDisplay]()
