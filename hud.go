package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const scoreFontSize = 96

// ScoreHUD is the top bar with both score labels. The computer's score
// sits left of center, the player's right, matching the paddle sides.
type ScoreHUD struct {
	UI       *ebitenui.UI
	Player   *widget.Text
	Computer *widget.Text
}

// NewScoreHUD builds the score bar using the bundled Go Regular face.
func NewScoreHUD() (*ScoreHUD, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud: parse font: %w", err)
	}
	goFace, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    scoreFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hud: font face: %w", err)
	}
	var face ebtext.Face = ebtext.NewGoXFace(goFace)

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	computerScore := widget.NewText(
		widget.TextOpts.Text("0", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	playerScore := widget.NewText(
		widget.TextOpts.Text("0", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(480),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	bar.AddChild(computerScore)
	bar.AddChild(playerScore)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	return &ScoreHUD{
		UI:       &ebitenui.UI{Container: root},
		Player:   playerScore,
		Computer: computerScore,
	}, nil
}
