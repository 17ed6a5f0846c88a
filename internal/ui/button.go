//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a centred caption.
type Button struct {
	Rect    image.Rectangle
	Text    string
	hovered bool
	pressed bool
}

// NewButton returns a button covering rect.
func NewButton(rect image.Rectangle, caption string) *Button {
	return &Button{Rect: rect, Text: caption}
}

// Update tracks the mouse and reports a click, i.e. a press released while
// still over the button.
func (b *Button) Update() bool {
	mx, my := ebiten.CursorPosition()
	b.hovered = pointInRect(mx, my, b.Rect)

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return wasPressed && !b.pressed && b.hovered
}

// Reset forgets any in-progress press.
func (b *Button) Reset() {
	b.hovered = false
	b.pressed = false
}

// Draw paints the button.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	switch {
	case b.pressed:
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 78, G: 80, B: 92, A: 255}
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 230, G: 230, B: 240, A: 255}, false)

	const scale = 2
	baseline := b.Rect.Min.Y + (b.Rect.Dy()+glyphH*scale)/2 - scale
	drawLabelSpan(screen, Label{Text: b.Text, Scale: scale, Y: baseline}, color.White, b.Rect.Min.X, b.Rect.Dx())
}
