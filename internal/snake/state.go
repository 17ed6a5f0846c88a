package snake

import (
	"image/color"
	"time"

	"snake/internal/core"
)

// Cell values written by Rasterize.
const (
	CellEmpty uint8 = iota
	CellFood
	CellBody
	CellHead
)

// Food is the single item on the board.
type Food struct {
	Pos   core.Point
	Color color.RGBA
}

// State holds everything about a round. During play it is only mutated
// through Update; the exported fields are there for drawing and for setting
// up positions directly.
type State struct {
	cfg  Config
	size core.Size

	// Body lists the occupied cells head first.
	Body []core.Point
	Food Food

	// Dir is the heading of the last move; Next is the pending heading that
	// the following tick commits.
	Dir  Direction
	Next Direction

	Running  bool
	Score    int
	Interval time.Duration

	rng      *core.RNG
	occupied []bool
	free     []core.Point
}

// New returns a running round built from cfg.
func New(cfg Config) *State {
	cfg = cfg.Normalize()
	s := &State{
		cfg:  cfg,
		size: core.Size{W: cfg.Cols, H: cfg.Rows},
		rng:  core.NewRNG(cfg.Seed),
	}
	s.occupied = make([]bool, s.size.Cells())
	s.free = make([]core.Point, 0, s.size.Cells())
	s.reset()
	return s
}

// Config returns the normalised configuration of the round.
func (s *State) Config() Config { return s.cfg }

// Size reports the board dimensions in cells.
func (s *State) Size() core.Size { return s.size }

// Head returns the head cell.
func (s *State) Head() core.Point { return s.Body[0] }

// Len returns the number of body segments.
func (s *State) Len() int { return len(s.Body) }

// Update applies ev to the state. Events are expected to arrive serially
// from a single loop.
func (s *State) Update(ev Event) Outcome {
	switch ev.Kind {
	case EventTick:
		return s.step()
	case EventKeyPress:
		return Outcome{Steered: s.steer(ev.Dir)}
	case EventRestart:
		s.reset()
		return Outcome{Restarted: true}
	}
	return Outcome{}
}

// step moves, eats, then checks for collisions.
func (s *State) step() Outcome {
	if !s.Running {
		return Outcome{}
	}
	out := Outcome{Moved: true}
	s.Dir = s.Next

	tail := s.Body[len(s.Body)-1]
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = s.Body[0].Add(s.Dir.Delta())

	if s.Body[0] == s.Food.Pos {
		s.Body = append(s.Body, tail)
		s.Score++
		s.Interval = s.cfg.IntervalFor(s.Score)
		s.placeFood()
		out.Ate = true
	}

	if s.collided() {
		s.Running = false
		out.Died = true
	}
	return out
}

func (s *State) collided() bool {
	head := s.Body[0]
	if !s.size.Contains(head) {
		return true
	}
	for _, seg := range s.Body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// steer sets the pending heading unless it reverses the current one.
func (s *State) steer(d Direction) bool {
	if !d.Valid() || d == s.Dir.Opposite() {
		return false
	}
	s.Next = d
	return true
}

func (s *State) reset() {
	n := s.cfg.StartLength
	if cap(s.Body) < n {
		s.Body = make([]core.Point, n)
	}
	s.Body = s.Body[:n]
	for i := range s.Body {
		s.Body[i] = core.Point{}
	}
	s.Dir = Right
	s.Next = Right
	s.Score = 0
	s.Interval = s.cfg.StartInterval
	s.Running = true
	s.placeFood()
}

// placeFood moves the food to a random cell not covered by the snake. When
// the snake fills the board any cell is accepted.
func (s *State) placeFood() {
	for i := range s.occupied {
		s.occupied[i] = false
	}
	for _, seg := range s.Body {
		if s.size.Contains(seg) {
			s.occupied[seg.Y*s.size.W+seg.X] = true
		}
	}
	s.free = s.free[:0]
	for y := 0; y < s.size.H; y++ {
		for x := 0; x < s.size.W; x++ {
			if !s.occupied[y*s.size.W+x] {
				s.free = append(s.free, core.Point{X: x, Y: y})
			}
		}
	}

	var pos core.Point
	if len(s.free) > 0 {
		pos = s.free[s.rng.IntN(len(s.free))]
	} else {
		pos = core.Point{X: s.rng.IntN(s.size.W), Y: s.rng.IntN(s.size.H)}
	}
	s.Food = Food{
		Pos:   pos,
		Color: color.RGBA{R: s.rng.Byte(), G: s.rng.Byte(), B: s.rng.Byte(), A: 255},
	}
}

// Rasterize writes the board into g using the Cell* values. Segments that
// have left the board are skipped. g must match the board size.
func (s *State) Rasterize(g *core.ByteGrid) {
	g.Clear()
	g.Set(s.Food.Pos, CellFood)
	for i := len(s.Body) - 1; i > 0; i-- {
		g.Set(s.Body[i], CellBody)
	}
	g.Set(s.Body[0], CellHead)
}
