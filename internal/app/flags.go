package app

import (
	"flag"
	"time"

	"snake/internal/snake"
)

// Config represents the command-line parameters for the application. The
// defaults reproduce the classic 800x800 board.
type Config struct {
	Cols int
	Rows int
	Unit int
	TPS  int
	Seed int64
	Mute bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Cols: 32, Rows: 32, Unit: 25, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "board width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board height in cells")
	fs.IntVar(&c.Unit, "unit", c.Unit, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames polled per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement (0 picks one from the clock)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound effects")
}

// Normalize replaces non-positive values with the defaults.
func (c *Config) Normalize() {
	def := NewConfig()
	if c.Cols <= 0 {
		c.Cols = def.Cols
	}
	if c.Rows <= 0 {
		c.Rows = def.Rows
	}
	if c.Unit <= 0 {
		c.Unit = def.Unit
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
}

// ScreenSize returns the window size in pixels.
func (c *Config) ScreenSize() (int, int) {
	return c.Cols * c.Unit, c.Rows * c.Unit
}

// SnakeConfig derives the simulation config. A zero seed is replaced with
// one taken from now.
func (c *Config) SnakeConfig(now time.Time) snake.Config {
	sc := snake.DefaultConfig()
	sc.Cols = c.Cols
	sc.Rows = c.Rows
	sc.Seed = c.Seed
	if sc.Seed == 0 {
		sc.Seed = now.UnixNano()
	}
	return sc
}
