//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// drawLabel renders l horizontally centred on dst.
func drawLabel(dst *ebiten.Image, l Label, clr color.Color) {
	drawLabelSpan(dst, l, clr, 0, dst.Bounds().Dx())
}

// drawLabelSpan renders l centred within [left, left+width).
func drawLabelSpan(dst *ebiten.Image, l Label, clr color.Color, left, width int) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, l.Text)
	w := int(float64(bounds.Dx()) * l.Scale)
	x := left + centerX(width, w)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(l.Scale, l.Scale)
	op.GeoM.Translate(float64(x), float64(l.Y))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, l.Text, face, op)
}
