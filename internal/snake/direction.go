package snake

import "snake/internal/core"

// Direction is one of the four headings the snake can move in.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Valid reports whether d is one of the four known headings.
func (d Direction) Valid() bool { return d <= Right }

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Delta returns the one-cell offset for a move in direction d.
// Up decreases Y, matching screen coordinates.
func (d Direction) Delta() core.Point {
	switch d {
	case Up:
		return core.Point{X: 0, Y: -1}
	case Down:
		return core.Point{X: 0, Y: 1}
	case Left:
		return core.Point{X: -1, Y: 0}
	case Right:
		return core.Point{X: 1, Y: 0}
	}
	return core.Point{}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
