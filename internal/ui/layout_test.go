package ui

import (
	"image"
	"testing"
)

func TestGameOverLabels(t *testing.T) {
	labels := GameOverLabels(17, 800, 800)
	if len(labels) != 3 {
		t.Fatalf("got %d labels, want 3", len(labels))
	}
	if labels[0].Text != "Game Over" || labels[1].Text != "Score: 17" {
		t.Fatalf("unexpected labels %+v", labels)
	}
	for i := 1; i < len(labels); i++ {
		if labels[i].Y <= labels[i-1].Y {
			t.Fatalf("label %d is not below label %d", i, i-1)
		}
	}
	for _, l := range labels {
		if w := textWidth(l.Text, l.Scale); w > 800 {
			t.Fatalf("%q is %dpx wide, wider than the screen", l.Text, w)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	l := ScoreLabel(3)
	if l.Text != "Score: 3" {
		t.Fatalf("Text = %q", l.Text)
	}
	if l.Y <= 0 {
		t.Fatalf("baseline %d is off screen", l.Y)
	}
}

func TestPlayAgainRect(t *testing.T) {
	r := PlayAgainRect(800, 800)
	screen := image.Rect(0, 0, 800, 800)
	if !r.In(screen) {
		t.Fatalf("button %v outside the screen", r)
	}
	if r.Min.X+r.Max.X != 800 {
		t.Fatalf("button %v is not centred", r)
	}
	labels := GameOverLabels(0, 800, 800)
	if r.Min.Y <= labels[len(labels)-1].Y {
		t.Fatal("button overlaps the restart prompt")
	}
}

func TestGameOverLayoutKeepsClassicPositions(t *testing.T) {
	labels := GameOverLabels(0, 800, 800)
	wantY := []int{300, 400, 500}
	wantScale := []float64{titleScale, subtitleScale, subtitleScale}
	for i, l := range labels {
		if l.Y != wantY[i] || l.Scale != wantScale[i] {
			t.Fatalf("label %d = %+v, want y=%d scale=%v", i, l, wantY[i], wantScale[i])
		}
	}
	if r := PlayAgainRect(800, 800); r.Min.Y != 550 {
		t.Fatalf("button top = %d, want 550", r.Min.Y)
	}
}

func TestGameOverLayoutFitsSmallWindow(t *testing.T) {
	sizes := [][2]int{{400, 200}, {160, 120}, {100, 40}, {800, 300}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		screen := image.Rect(0, 0, w, h)
		r := PlayAgainRect(w, h)
		if !r.In(screen) || r.Empty() {
			t.Fatalf("%dx%d: button %v outside the screen", w, h, r)
		}
		for _, l := range GameOverLabels(99, w, h) {
			if l.Scale < 1 {
				t.Fatalf("%dx%d: %q scaled to %v", w, h, l.Text, l.Scale)
			}
			if l.Scale > 1 && textWidth(l.Text, l.Scale) > w {
				t.Fatalf("%dx%d: %q is %dpx wide", w, h, l.Text, textWidth(l.Text, l.Scale))
			}
			if l.Y < 0 || l.Y > h {
				t.Fatalf("%dx%d: %q baseline %d off screen", w, h, l.Text, l.Y)
			}
		}
	}

	labels := GameOverLabels(0, 400, 200)
	if r := PlayAgainRect(400, 200); r.Min.Y <= labels[len(labels)-1].Y {
		t.Fatalf("button %v overlaps the restart prompt", r)
	}
}

func TestPointInRect(t *testing.T) {
	r := image.Rect(10, 10, 20, 20)
	if !pointInRect(10, 10, r) || !pointInRect(19, 19, r) {
		t.Fatal("inner points rejected")
	}
	if pointInRect(20, 15, r) || pointInRect(15, 9, r) {
		t.Fatal("outer points accepted")
	}
}
