package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionForward, false
	case "a", "left":
		return core.ActionTurnLeft, false
	case "d", "right":
		return core.ActionTurnRight, false
	case " ", "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "m", "b":
		return core.ActionMenu, false
	}
	return core.ActionNone, false
}

// held reports whether an action is continuous rather than one-shot.
func held(a core.Action) bool {
	switch a {
	case core.ActionForward, core.ActionTurnLeft, core.ActionTurnRight:
		return true
	default:
		return false
	}
}

// HoldTracker emulates key-up events, which terminals do not report.
// A movement key counts as held for a window after each press; the first
// press gets a longer window to bridge the terminal's auto-repeat delay.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
	pending map[core.Action]bool
}

// NewHoldTracker creates a tracker with the default hold windows.
func NewHoldTracker() *HoldTracker {
	return NewHoldTrackerWindows(550*time.Millisecond, 150*time.Millisecond)
}

// NewHoldTrackerWindows creates a tracker with explicit hold windows.
func NewHoldTrackerWindows(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// Press records a key press at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !held(a) {
		h.pending[a] = true
		return
	}

	// Turning one way cancels the other.
	switch a {
	case core.ActionTurnLeft:
		delete(h.until, core.ActionTurnRight)
	case core.ActionTurnRight:
		delete(h.until, core.ActionTurnLeft)
	}

	window := h.initial
	if until, ok := h.until[a]; ok && now.Before(until) {
		window = h.repeat
	}
	if next := now.Add(window); next.After(h.until[a]) {
		h.until[a] = next
	}
}

// Frame returns the input for a frame at now. One-shot actions are
// reported once; held actions persist until their window lapses.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range h.until {
		if now.Before(until) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for a := range h.pending {
		f.Set(a)
	}
	clear(h.pending)
	return f
}

// Reset forgets all presses.
func (h *HoldTracker) Reset() {
	clear(h.until)
	clear(h.pending)
}
