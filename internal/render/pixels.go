package render

import (
	"image/color"

	"snake/internal/snake"
)

// Palette assigns colours to the snake cell kinds.
type Palette struct {
	Empty color.RGBA
	Body  color.RGBA
	Head  color.RGBA
}

// DefaultPalette leaves empty cells transparent so the background and grid
// lines show through. Head and body use magenta and cyan.
func DefaultPalette() Palette {
	return Palette{
		Empty: color.RGBA{},
		Body:  color.RGBA{R: 0, G: 255, B: 255, A: 255},
		Head:  color.RGBA{R: 255, G: 0, B: 255, A: 255},
	}
}

// Entries returns the palette indexed by cell value, using food as the colour
// of the food cell.
func (p Palette) Entries(food color.RGBA) []color.RGBA {
	entries := make([]color.RGBA, snake.CellHead+1)
	entries[snake.CellEmpty] = p.Empty
	entries[snake.CellFood] = food
	entries[snake.CellBody] = p.Body
	entries[snake.CellHead] = p.Head
	return entries
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
