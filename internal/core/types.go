package core

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// Contains reports whether p lies inside [0, W) x [0, H).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Point is a cell coordinate. Pixel positions are derived by multiplying with
// the grid unit, so a Point is always grid aligned.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}
