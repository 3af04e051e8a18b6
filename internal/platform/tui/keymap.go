package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// GameKeyMap defines the in-flight key bindings.
type GameKeyMap struct {
	ThrustUp    key.Binding
	ThrustDown  key.Binding
	ThrustLeft  key.Binding
	ThrustRight key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Back        key.Binding
	Quit        key.Binding
	Screenshot  key.Binding
	Help        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ThrustUp, k.RotateLeft, k.RotateRight, k.Pause, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ThrustUp, k.ThrustDown, k.ThrustLeft, k.ThrustRight},
		{k.RotateLeft, k.RotateRight, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit, k.Help},
	}
}

// DefaultGameKeyMap returns the default flight controls.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		ThrustUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "main engine"),
		),
		ThrustDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "retro engine"),
		),
		ThrustLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "thrust left"),
		),
		ThrustRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "thrust right"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys(" ", "q"),
			key.WithHelp("space/q", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rotate right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the flight key bindings.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.ThrustUp):
		return core.ActionThrustUp, false
	case key.Matches(msg, k.ThrustDown):
		return core.ActionThrustDown, false
	case key.Matches(msg, k.ThrustLeft):
		return core.ActionThrustLeft, false
	case key.Matches(msg, k.ThrustRight):
		return core.ActionThrustRight, false
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft, false
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToHeld registers a key press with the held-key tracker.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToHeld(msg tea.KeyMsg, held *core.HeldKeys) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		held.Press(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
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
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
