package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionThrustUp, false},
		{"w", core.ActionThrustUp, false},
		{"down", core.ActionThrustDown, false},
		{"s", core.ActionThrustDown, false},
		{"left", core.ActionThrustLeft, false},
		{"a", core.ActionThrustLeft, false},
		{"right", core.ActionThrustRight, false},
		{"d", core.ActionThrustRight, false},
		{" ", core.ActionRotateLeft, false},
		{"q", core.ActionRotateLeft, false},
		{"e", core.ActionRotateRight, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.key, action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.key, quit, tt.quit)
			}
		})
	}
}

func TestKeyMapperHeldKeys(t *testing.T) {
	km := NewKeyMapper()
	held := core.NewHeldKeys(3)

	if km.MapKeyToHeld(keyMsg("w"), held) {
		t.Fatal("w should not quit")
	}
	km.MapKeyToHeld(keyMsg("p"), held)

	frame := held.Frame()
	if !frame.Has(core.ActionThrustUp) || !frame.Has(core.ActionPause) {
		t.Fatalf("frame missing actions: %v", frame.Actions)
	}

	held.Tick()
	frame = held.Frame()
	if !frame.Has(core.ActionThrustUp) {
		t.Error("thrust should stay held for the hold window")
	}
	if frame.Has(core.ActionPause) {
		t.Error("pause should be delivered once")
	}

	if !km.MapKeyToHeld(keyMsg("ctrl+c"), held) {
		t.Error("ctrl+c should quit")
	}
}

func TestKeyMapperMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"z", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
