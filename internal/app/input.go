package app

import "snake/internal/snake"

// CommandKind enumerates what a key press can ask of the loop.
type CommandKind uint8

const (
	CommandNone CommandKind = iota
	CommandQuit
	CommandPause
	CommandRestart
	CommandSteer
)

// Command is a resolved key press. Dir is only meaningful for CommandSteer.
type Command struct {
	Kind CommandKind
	Dir  snake.Direction
}

// keyCommands is keyed by ebiten key names. WASD and the arrow keys both
// steer.
var keyCommands = map[string]Command{
	"W":          {Kind: CommandSteer, Dir: snake.Up},
	"ArrowUp":    {Kind: CommandSteer, Dir: snake.Up},
	"S":          {Kind: CommandSteer, Dir: snake.Down},
	"ArrowDown":  {Kind: CommandSteer, Dir: snake.Down},
	"A":          {Kind: CommandSteer, Dir: snake.Left},
	"ArrowLeft":  {Kind: CommandSteer, Dir: snake.Left},
	"D":          {Kind: CommandSteer, Dir: snake.Right},
	"ArrowRight": {Kind: CommandSteer, Dir: snake.Right},
	"Escape":     {Kind: CommandQuit},
	"Q":          {Kind: CommandQuit},
	"Space":      {Kind: CommandPause},
	"Enter":      {Kind: CommandRestart},
	"R":          {Kind: CommandRestart},
}

// CommandFor resolves a key name for the current round. The restart keys
// only act on the game-over screen.
func CommandFor(key string, running bool) Command {
	cmd := keyCommands[key]
	if cmd.Kind == CommandRestart && running {
		return Command{}
	}
	return cmd
}

// Apply carries out cmd and reports whether the game should quit.
func (l *Loop) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CommandQuit:
		return true
	case CommandPause:
		l.TogglePause()
	case CommandRestart:
		l.Dispatch(snake.Restart())
	case CommandSteer:
		l.Dispatch(snake.KeyPress(cmd.Dir))
	}
	return false
}
