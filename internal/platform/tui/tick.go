// Package tui provides the Bubble Tea integration for the rain shield.
// It handles the terminal UI loop, input mapping, and step timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. The model turns the wall time
// between frames into fixed simulation steps.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
