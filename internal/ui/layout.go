package ui

import (
	"fmt"
	"image"
)

// glyphW and glyphH are the cell dimensions of basicfont.Face7x13.
const (
	glyphW = 7
	glyphH = 13
)

const (
	scoreScale    = 2
	titleScale    = 5
	subtitleScale = 3

	buttonWidth  = 240
	buttonHeight = 48
)

// Label is one line of centred text. Y is the baseline.
type Label struct {
	Text  string
	Scale float64
	Y     int
}

// ScoreText formats the running score line.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// ScoreLabel positions the score at the top of the screen.
func ScoreLabel(score int) Label {
	return Label{Text: ScoreText(score), Scale: scoreScale, Y: glyphH * scoreScale}
}

// GameOverLabels lays out the game-over message, the final score and the
// restart prompt around the vertical centre of a width x height screen. Line
// spacing is an eighth of the height and each line is scaled down until it
// fits both the screen width and its line.
func GameOverLabels(score, width, height int) []Label {
	mid := height / 2
	gap := lineGap(height)
	return []Label{
		fitLabel("Game Over", titleScale, mid-gap, width, gap),
		fitLabel(ScoreText(score), subtitleScale, mid, width, gap),
		fitLabel("Press 'Play Again' to Restart", subtitleScale, mid+gap, width, gap),
	}
}

// PlayAgainRect returns the bounds of the restart button, placed half a line
// below the prompt and clamped into the screen.
func PlayAgainRect(width, height int) image.Rectangle {
	w := min(buttonWidth, width)
	h := min(buttonHeight, height)
	x := centerX(width, w)
	y := height/2 + lineGap(height)*3/2
	if y+h > height {
		y = height - h
	}
	return image.Rect(x, y, x+w, y+h)
}

func lineGap(height int) int {
	return height / 8
}

// fitLabel picks the largest scale up to maxScale at which text fits width
// and whose glyphs are no taller than gap. The scale never drops below 1.
func fitLabel(text string, maxScale, y, width, gap int) Label {
	scale := maxScale
	for scale > 1 && (textWidth(text, float64(scale)) > width || glyphH*scale > gap) {
		scale--
	}
	return Label{Text: text, Scale: float64(scale), Y: y}
}

// textWidth returns the rendered width of s at the given scale.
func textWidth(s string, scale float64) int {
	return int(float64(len(s)*glyphW) * scale)
}

func centerX(screenWidth, width int) int {
	return (screenWidth - width) / 2
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
