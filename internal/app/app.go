//go:build ebiten

package app

import (
	"image/color"
	"time"

	"snake/internal/core"
	"snake/internal/render"
	"snake/internal/snake"
	"snake/internal/sound"
	"snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a snake round to the ebiten.Game interface. Timer firings, key
// presses and button clicks are all turned into snake events on the update
// goroutine; Draw only reads.
type Game struct {
	loop  *Loop
	board *render.BoardPainter
	hud   *ui.HUD
	over  *ui.GameOver

	background color.Color
	width      int
	height     int
	keys       []ebiten.Key
}

// New constructs a Game from the command-line configuration.
func New(cfg *Config) *Game {
	st := snake.New(cfg.SnakeConfig(time.Now()))
	loop := NewLoop(st)
	if !cfg.Mute {
		sfx := sound.NewEffects()
		loop.OnEat = sfx.Eat
		loop.OnGameOver = sfx.GameOver
	}
	w, h := cfg.ScreenSize()
	return &Game{
		loop:       loop,
		board:      render.NewBoardPainter(core.Size{W: cfg.Cols, H: cfg.Rows}, cfg.Unit),
		hud:        ui.NewHUD(),
		over:       ui.NewGameOver(w, h),
		background: color.RGBA{R: 128, G: 128, B: 128, A: 255},
		width:      w,
		height:     h,
	}
}

// Update handles per-frame input and advances the round when its timer is due.
func (g *Game) Update() error {
	st := g.loop.State()
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		cmd := CommandFor(k.String(), st.Running)
		if g.loop.Apply(cmd) {
			return ebiten.Termination
		}
		if cmd.Kind == CommandRestart {
			g.over.Hide()
		}
	}

	if !st.Running {
		if g.over.Update() {
			g.restart()
		}
		return nil
	}
	g.loop.Advance(time.Now())
	return nil
}

func (g *Game) restart() {
	g.loop.Apply(Command{Kind: CommandRestart})
	g.over.Hide()
}

// Draw renders the board and score, or the game-over overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	st := g.loop.State()
	if !st.Running {
		g.over.Draw(screen, st.Score)
		return
	}
	g.board.Draw(screen, st)
	g.hud.Draw(screen, st.Score, g.loop.Paused())
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
