package snake

// EventKind enumerates the inputs the simulation reacts to.
type EventKind uint8

const (
	// EventTick advances the simulation by one step.
	EventTick EventKind = iota
	// EventKeyPress requests a new heading.
	EventKeyPress
	// EventRestart starts a fresh round.
	EventRestart
)

// Event is a single input to Update. Dir is only meaningful for
// EventKeyPress.
type Event struct {
	Kind EventKind
	Dir  Direction
}

// Tick returns a timer event.
func Tick() Event { return Event{Kind: EventTick} }

// KeyPress returns a steering event for d.
func KeyPress(d Direction) Event { return Event{Kind: EventKeyPress, Dir: d} }

// Restart returns a restart request.
func Restart() Event { return Event{Kind: EventRestart} }

// Outcome reports what an Update changed so the caller can adjust the timer
// and surface feedback.
type Outcome struct {
	Moved     bool
	Ate       bool
	Died      bool
	Steered   bool
	Restarted bool
}
