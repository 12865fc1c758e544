package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/termtris/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. forceQuit is true only
// for Ctrl+C, which terminates the program regardless of game state; a plain
// Q is delivered to the game as ActionQuit so each state can interpret it.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, forceQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q":
		return core.ActionQuit, false
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "down", "s", "j":
		return core.ActionSoftDrop, false
	case " ":
		return core.ActionHardDrop, false
	case "up", "x", "w", "k":
		return core.ActionRotateCW, false
	case "z":
		return core.ActionRotateCCW, false
	case "c":
		return core.ActionHold, false
	case "p", "esc":
		return core.ActionPause, false
	case "enter":
		return core.ActionConfirm, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}
