//go:build ebiten

package sound

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Effects plays the eat and game-over beeps. A nil *Effects is silent.
type Effects struct {
	eat  *audio.Player
	over *audio.Player
}

// NewEffects builds the players on the shared audio context, creating it on
// first use.
func NewEffects() *Effects {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	rate := ctx.SampleRate()
	return &Effects{
		eat:  ctx.NewPlayerFromBytes(Beep(rate, 880, 100*time.Millisecond, 4000)),
		over: ctx.NewPlayerFromBytes(Beep(rate, 220, 400*time.Millisecond, 4000)),
	}
}

// Eat plays the food pickup beep.
func (e *Effects) Eat() {
	if e == nil {
		return
	}
	play(e.eat)
}

// GameOver plays the low end-of-round tone.
func (e *Effects) GameOver() {
	if e == nil {
		return
	}
	play(e.over)
}

func play(p *audio.Player) {
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("sound: rewind: %v", err)
		return
	}
	p.Play()
}
