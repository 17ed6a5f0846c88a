package snake

import "time"

// Config holds the board dimensions and pacing of a round.
type Config struct {
	Cols int
	Rows int

	StartLength int

	// StartInterval is the tick interval of a fresh round. Each food eaten
	// shortens it by IntervalStep until MinInterval is reached.
	StartInterval time.Duration
	IntervalStep  time.Duration
	MinInterval   time.Duration

	Seed int64
}

// DefaultConfig returns the standard 32x32 board with a six segment snake.
func DefaultConfig() Config {
	return Config{
		Cols:          32,
		Rows:          32,
		StartLength:   6,
		StartInterval: 70 * time.Millisecond,
		IntervalStep:  2 * time.Millisecond,
		MinInterval:   30 * time.Millisecond,
		Seed:          1,
	}
}

// Normalize replaces unusable values with their defaults.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.Cols <= 0 {
		c.Cols = def.Cols
	}
	if c.Rows <= 0 {
		c.Rows = def.Rows
	}
	if c.StartLength <= 0 {
		c.StartLength = def.StartLength
	}
	if c.StartInterval <= 0 {
		c.StartInterval = def.StartInterval
	}
	if c.IntervalStep < 0 {
		c.IntervalStep = 0
	}
	if c.MinInterval <= 0 {
		c.MinInterval = def.MinInterval
	}
	if c.MinInterval > c.StartInterval {
		c.MinInterval = c.StartInterval
	}
	return c
}

// IntervalFor returns the tick interval after score foods have been eaten.
func (c Config) IntervalFor(score int) time.Duration {
	d := c.StartInterval - time.Duration(score)*c.IntervalStep
	if d < c.MinInterval {
		return c.MinInterval
	}
	return d
}
