// Package tui provides the Bubble Tea integration for the arena.
// It handles the terminal UI loop, input mapping, rendering and the SSH
// server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the simulation by one frame.
type FrameMsg time.Time

// maxFrameDelta caps the time fed to one frame after a stall.
const maxFrameDelta = 250 * time.Millisecond

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// frameDelta returns the seconds between two frames, clamped to
// [0, maxFrameDelta]. A zero previous time yields zero.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d.Seconds()
}
