package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/rules"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Control is a platform request that is not a game command.
type Control int

const (
	ControlNone    Control = iota
	ControlQuit            // Leave the arcade
	ControlBack            // Return to the menu
	ControlNewGame         // Start a fresh session
	ControlConfirm         // Start when idle, otherwise act on the cursor or input
	ControlCursorLeft
	ControlCursorRight
	ControlCursorUp
	ControlCursorDown
)

// MapGameKey translates a key pressed during a game. At most one of the
// results is meaningful: a command with a non-None action, or a control.
//
// Number Guessing owns the keyboard for its input field, so only the
// non-printable controls are mapped for it.
func (km *KeyMapper) MapGameKey(gameID string, msg tea.KeyMsg) (core.Command, Control) {
	none := core.Cmd(core.ActionNone)
	key := msg.String()

	switch key {
	case "ctrl+c":
		return none, ControlQuit
	case "esc":
		return none, ControlBack
	case "enter":
		return none, ControlConfirm
	}

	if gameID == record.Guess {
		return none, ControlNone
	}

	switch key {
	case "q":
		return none, ControlQuit
	case "b":
		return none, ControlBack
	case "n":
		return none, ControlNewGame
	}

	switch gameID {
	case record.Clicker:
		switch key {
		case " ", "c":
			return core.Cmd(core.ActionClick), ControlNone
		}

	case record.Dodge:
		switch key {
		case "left", "a", "h":
			return core.Cmd(core.ActionMoveLeft), ControlNone
		case "right", "d", "l":
			return core.Cmd(core.ActionMoveRight), ControlNone
		case "p", " ":
			return core.Cmd(core.ActionPause), ControlNone
		}

	case record.Memory:
		switch key {
		case "left", "a", "h":
			return none, ControlCursorLeft
		case "right", "d", "l":
			return none, ControlCursorRight
		case "up", "w", "k":
			return none, ControlCursorUp
		case "down", "s", "j":
			return none, ControlCursorDown
		case " ":
			return none, ControlConfirm
		}

	case record.RPS:
		switch key {
		case "1", "r":
			return core.CmdArg(core.ActionChoose, int(rules.Rock)), ControlNone
		case "2", "p":
			return core.CmdArg(core.ActionChoose, int(rules.Paper)), ControlNone
		case "3", "s":
			return core.CmdArg(core.ActionChoose, int(rules.Scissors)), ControlNone
		case "left", "h":
			return none, ControlCursorLeft
		case "right", "l":
			return none, ControlCursorRight
		case " ":
			return none, ControlConfirm
		}
	}

	return none, ControlNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionLeaderboard
	MenuActionSwitchPlayer
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "l":
		return MenuActionLeaderboard
	case "u":
		return MenuActionSwitchPlayer
	}

	return MenuActionNone
}
