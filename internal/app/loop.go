package app

import (
	"time"

	"snake/internal/core"
	"snake/internal/snake"
)

// Loop couples a round with the timer that paces it. Every event goes
// through Dispatch so timer changes stay in step with the state.
type Loop struct {
	state  *snake.State
	timer  *core.Timer
	paused bool

	// OnEat and OnGameOver are optional feedback hooks.
	OnEat      func()
	OnGameOver func()
}

// NewLoop arms a timer at the round's current interval.
func NewLoop(st *snake.State) *Loop {
	l := &Loop{state: st, timer: core.NewTimer(st.Interval)}
	if st.Running {
		l.timer.Start()
	}
	return l
}

// State exposes the round for drawing.
func (l *Loop) State() *snake.State { return l.state }

// Paused reports whether ticking is suspended.
func (l *Loop) Paused() bool { return l.paused }

// Advance delivers a tick when the timer is due at now.
func (l *Loop) Advance(now time.Time) snake.Outcome {
	if !l.timer.Fire(now) {
		return snake.Outcome{}
	}
	return l.Dispatch(snake.Tick())
}

// Dispatch applies ev and keeps the timer consistent with the result: a
// game over stops it, eating re-paces it and a restart re-arms it at the
// starting interval.
func (l *Loop) Dispatch(ev snake.Event) snake.Outcome {
	out := l.state.Update(ev)
	if out.Restarted {
		l.paused = false
		l.timer.Stop()
		l.timer.SetDelay(l.state.Interval)
		l.timer.Start()
	}
	if out.Ate {
		l.timer.SetDelay(l.state.Interval)
		if l.OnEat != nil {
			l.OnEat()
		}
	}
	if out.Died {
		l.timer.Stop()
		if l.OnGameOver != nil {
			l.OnGameOver()
		}
	}
	return out
}

// TogglePause suspends or resumes ticking. It has no effect once the round
// is over.
func (l *Loop) TogglePause() {
	if !l.state.Running {
		return
	}
	l.paused = !l.paused
	if l.paused {
		l.timer.Stop()
		return
	}
	l.timer.Start()
}
