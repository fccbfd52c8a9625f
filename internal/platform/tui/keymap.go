package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates raw key bytes to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key byte to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(key byte) (action core.Action, isQuit bool) {
	switch key {
	case 'q', 'Q':
		return core.ActionQuit, true
	case 'w', 'W':
		return core.ActionUp, false
	case 's', 'S':
		return core.ActionDown, false
	case 'a', 'A':
		return core.ActionLeft, false
	case 'd', 'D':
		return core.ActionRight, false
	case '\r', '\n':
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Binding describes one key binding for help output.
type Binding struct {
	Keys   string
	Action core.Action
	Help   string
}

// Bindings lists the controls in display order.
func Bindings() []Binding {
	return []Binding{
		{Keys: "w / W", Action: core.ActionUp, Help: "turn up"},
		{Keys: "a / A", Action: core.ActionLeft, Help: "turn left"},
		{Keys: "s / S", Action: core.ActionDown, Help: "turn down"},
		{Keys: "d / D", Action: core.ActionRight, Help: "turn right"},
		{Keys: "Enter", Action: core.ActionRestart, Help: "new round after game over"},
		{Keys: "q / Q", Action: core.ActionQuit, Help: "quit"},
		{Keys: "Ctrl+C", Action: core.ActionQuit, Help: "quit at any time"},
	}
}
