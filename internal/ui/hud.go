//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUD draws the score while a round is running.
type HUD struct {
	color color.Color
	dim   color.Color
}

// NewHUD constructs a HUD with the default red score text.
func NewHUD() *HUD {
	return &HUD{
		color: color.RGBA{R: 255, A: 255},
		dim:   color.RGBA{R: 230, G: 230, B: 240, A: 255},
	}
}

// Draw paints the score, and a pause notice when paused.
func (h *HUD) Draw(screen *ebiten.Image, score int, paused bool) {
	if h == nil {
		return
	}
	drawLabel(screen, ScoreLabel(score), h.color)
	if paused {
		mid := screen.Bounds().Dy() / 2
		drawLabel(screen, Label{Text: "Paused", Scale: subtitleScale, Y: mid}, h.dim)
	}
}
