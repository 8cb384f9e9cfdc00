package core

// Action represents a semantic game command, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionClick            // Clicker: one click
	ActionMoveLeft         // Dodge: start moving left (key down)
	ActionMoveRight        // Dodge: start moving right (key down)
	ActionStopLeft         // Dodge: stop moving left (key up)
	ActionStopRight        // Dodge: stop moving right (key up)
	ActionPause            // Dodge: pause/resume toggle
	ActionReveal           // Memory: reveal card at Arg
	ActionGuess            // Guess: submit Text as a guess
	ActionChoose           // RPS: play the choice in Arg
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionClick:
		return "Click"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionStopLeft:
		return "StopLeft"
	case ActionStopRight:
		return "StopRight"
	case ActionPause:
		return "Pause"
	case ActionReveal:
		return "Reveal"
	case ActionGuess:
		return "Guess"
	case ActionChoose:
		return "Choose"
	default:
		return "Unknown"
	}
}

// Command is a single input delivered by the presentation layer.
type Command struct {
	Action Action
	Arg    int    // Card index, choice, etc.
	Text   string // Raw text input (guesses are validated by the game)
}

// Cmd builds a Command with no argument.
func Cmd(a Action) Command {
	return Command{Action: a}
}

// CmdArg builds a Command carrying an integer argument.
func CmdArg(a Action, arg int) Command {
	return Command{Action: a, Arg: arg}
}

// CmdText builds a Command carrying raw text.
func CmdText(a Action, text string) Command {
	return Command{Action: a, Text: text}
}
