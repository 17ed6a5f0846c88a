package core

import "testing"

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(Point{X: 3, Y: 2}, 7)
	g.Set(Point{X: 4, Y: 0}, 9)
	g.Set(Point{X: -1, Y: 0}, 9)

	if got := g.At(Point{X: 3, Y: 2}); got != 7 {
		t.Fatalf("At(3,2) = %d, want 7", got)
	}
	if got := g.At(Point{X: 4, Y: 0}); got != 0 {
		t.Fatalf("At off-grid = %d, want 0", got)
	}
	total := 0
	for _, v := range g.Cells() {
		total += int(v)
	}
	if total != 7 {
		t.Fatalf("off-grid writes leaked into cells: sum=%d", total)
	}

	g.Clear()
	if g.At(Point{X: 3, Y: 2}) != 0 {
		t.Fatal("Clear did not reset cells")
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{W: 32, H: 32}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{31, 31}, true},
		{Point{32, 0}, false},
		{Point{0, 32}, false},
		{Point{-1, 5}, false},
		{Point{5, -1}, false},
	}
	for _, c := range cases {
		if got := s.Contains(c.p); got != c.want {
			t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
}
