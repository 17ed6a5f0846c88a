//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameOver is the end-of-round overlay with its Play Again button.
type GameOver struct {
	width  int
	height int
	color  color.Color
	button *Button
}

// NewGameOver lays the overlay out for a screen of the given size.
func NewGameOver(width, height int) *GameOver {
	return &GameOver{
		width:  width,
		height: height,
		color:  color.RGBA{R: 255, A: 255},
		button: NewButton(PlayAgainRect(width, height), "Play Again"),
	}
}

// Update reports whether Play Again was clicked.
func (o *GameOver) Update() bool {
	return o.button.Update()
}

// Hide clears the button state so a stale press does not carry into the
// next round.
func (o *GameOver) Hide() {
	o.button.Reset()
}

// Draw paints the message, the final score and the button.
func (o *GameOver) Draw(screen *ebiten.Image, score int) {
	for _, l := range GameOverLabels(score, o.width, o.height) {
		drawLabel(screen, l, o.color)
	}
	o.button.Draw(screen)
}
