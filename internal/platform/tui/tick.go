// Package tui provides the Bubble Tea integration for the lander.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fpsMeter measures delivered frames per second over one-second windows.
type fpsMeter struct {
	frames int
	start  time.Time
	fps    float64
}

// Frame records a frame at now and returns the latest measurement.
func (f *fpsMeter) Frame(now time.Time) float64 {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.fps = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.start = now
	}
	return f.fps
}
