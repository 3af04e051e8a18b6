package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionThrustUp           // Up, W - main engine
	ActionThrustDown         // Down, S - retro engine
	ActionThrustLeft         // Left, A - side thruster pushing left
	ActionThrustRight        // Right, D - side thruster pushing right
	ActionRotateLeft         // Space, Q
	ActionRotateRight        // E
	ActionPause              // P
	ActionRestart            // R after game over
	ActionQuit               // Ctrl+C
	ActionConfirm            // Enter in menus
	ActionBack               // Esc, B
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrustUp:
		return "ThrustUp"
	case ActionThrustDown:
		return "ThrustDown"
	case ActionThrustLeft:
		return "ThrustLeft"
	case ActionThrustRight:
		return "ThrustRight"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeldKeys turns discrete key presses into held actions.
//
// Terminals report key presses (and auto-repeat) but never key releases, so
// a press keeps its action active for a fixed number of ticks. Auto-repeat
// refreshes the hold while the key is down. One-shot actions (pause,
// restart) are delivered for exactly one tick.
type HeldKeys struct {
	holdTicks int
	held      map[Action]int
	once      map[Action]bool
}

// NewHeldKeys creates a tracker that holds each press for holdTicks ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{
		holdTicks: holdTicks,
		held:      make(map[Action]int),
		once:      make(map[Action]bool),
	}
}

// opposite pairs actions that cancel each other.
var opposite = map[Action]Action{
	ActionThrustUp:    ActionThrustDown,
	ActionThrustDown:  ActionThrustUp,
	ActionThrustLeft:  ActionThrustRight,
	ActionThrustRight: ActionThrustLeft,
	ActionRotateLeft:  ActionRotateRight,
	ActionRotateRight: ActionRotateLeft,
}

// Press registers a key press for the given action.
// Pressing an action releases its opposite.
func (h *HeldKeys) Press(a Action) {
	switch a {
	case ActionNone:
		return
	case ActionPause, ActionRestart, ActionQuit, ActionConfirm, ActionBack:
		h.once[a] = true
	default:
		if o, ok := opposite[a]; ok {
			h.Release(o)
		}
		h.held[a] = h.holdTicks
	}
}

// Release drops a held action immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.held, a)
}

// Frame returns the actions active for the current tick.
func (h *HeldKeys) Frame() InputFrame {
	f := NewInputFrame()
	for a := range h.held {
		f.Set(a)
	}
	for a := range h.once {
		f.Set(a)
	}
	return f
}

// Tick ages held actions by one tick and drops one-shot actions.
func (h *HeldKeys) Tick() {
	for a, n := range h.held {
		if n <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = n - 1
	}
	for a := range h.once {
		delete(h.once, a)
	}
}

// Reset drops every pending action.
func (h *HeldKeys) Reset() {
	for a := range h.held {
		delete(h.held, a)
	}
	for a := range h.once {
		delete(h.once, a)
	}
}
