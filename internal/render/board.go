//go:build ebiten

package render

import (
	"image/color"

	"snake/internal/core"
	"snake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardPainter draws the board as one cell-sized pixel per grid cell, scaled
// up by the grid unit, with grid lines underneath.
type BoardPainter struct {
	size    core.Size
	unit    int
	img     *ebiten.Image
	buf     []byte
	cells   *core.ByteGrid
	palette Palette

	gridColor color.Color
}

// NewBoardPainter allocates a painter for a board of the given size.
func NewBoardPainter(size core.Size, unit int) *BoardPainter {
	if unit <= 0 {
		unit = 1
	}
	return &BoardPainter{
		size:      size,
		unit:      unit,
		img:       ebiten.NewImage(size.W, size.H),
		buf:       make([]byte, 4*size.Cells()),
		cells:     core.NewByteGrid(size.W, size.H),
		palette:   DefaultPalette(),
		gridColor: color.Black,
	}
}

// Draw renders the grid, the food and the snake of st onto dst.
func (bp *BoardPainter) Draw(dst *ebiten.Image, st *snake.State) {
	bp.drawGrid(dst)

	st.Rasterize(bp.cells)
	fillPaletteRGBA(bp.buf, bp.cells.Cells(), bp.palette.Entries(st.Food.Color))
	bp.img.WritePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bp.unit), float64(bp.unit))
	dst.DrawImage(bp.img, op)
}

func (bp *BoardPainter) drawGrid(dst *ebiten.Image) {
	w := float32(bp.size.W * bp.unit)
	h := float32(bp.size.H * bp.unit)
	for i := 0; i <= bp.size.W; i++ {
		x := float32(i * bp.unit)
		vector.StrokeLine(dst, x, 0, x, h, 1, bp.gridColor, false)
	}
	for i := 0; i <= bp.size.H; i++ {
		y := float32(i * bp.unit)
		vector.StrokeLine(dst, 0, y, w, y, 1, bp.gridColor, false)
	}
}
