package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arena/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionForward, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionForward, false},
		{"a", runeKey('a'), core.ActionTurnLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft, false},
		{"d", runeKey('d'), core.ActionTurnRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionTurnRight, false},
		{"space", runeKey(' '), core.ActionConfirm, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"m", runeKey('m'), core.ActionMenu, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHoldTrackerWindows(t *testing.T) {
	h := NewHoldTrackerWindows(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionForward, t0)

	if f := h.Frame(t0.Add(400 * time.Millisecond)); !f.Has(core.ActionForward) {
		t.Error("forward should be held inside the initial window")
	}
	if f := h.Frame(t0.Add(600 * time.Millisecond)); f.Has(core.ActionForward) {
		t.Error("forward should lapse after the initial window")
	}
}

func TestHoldTrackerRepeatNeverShortens(t *testing.T) {
	h := NewHoldTrackerWindows(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionForward, t0)
	// A repeat soon after the first press must not cut the initial window.
	h.Press(core.ActionForward, t0.Add(50*time.Millisecond))

	if f := h.Frame(t0.Add(450 * time.Millisecond)); !f.Has(core.ActionForward) {
		t.Error("repeat shortened the hold")
	}

	// Repeats near the end of the window extend it.
	h.Press(core.ActionForward, t0.Add(480*time.Millisecond))
	if f := h.Frame(t0.Add(560 * time.Millisecond)); !f.Has(core.ActionForward) {
		t.Error("repeat did not extend the hold")
	}
	if f := h.Frame(t0.Add(700 * time.Millisecond)); f.Has(core.ActionForward) {
		t.Error("hold should lapse once repeats stop")
	}
}

func TestHoldTrackerOneShot(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionConfirm, t0)
	h.Press(core.ActionNone, t0)

	f := h.Frame(t0)
	if !f.Has(core.ActionConfirm) {
		t.Fatal("confirm should be reported once")
	}
	if f.Has(core.ActionNone) {
		t.Error("none should never be reported")
	}
	if f := h.Frame(t0.Add(time.Millisecond)); f.Has(core.ActionConfirm) {
		t.Error("confirm should not repeat")
	}
}

func TestHoldTrackerOppositeTurnCancels(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionTurnLeft, t0)
	h.Press(core.ActionTurnRight, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionTurnLeft) {
		t.Error("turning right should release left")
	}
	if !f.Has(core.ActionTurnRight) {
		t.Error("right should be held")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionForward, t0)
	h.Press(core.ActionPause, t0)
	h.Reset()

	f := h.Frame(t0)
	if f.Has(core.ActionForward) || f.Has(core.ActionPause) {
		t.Error("Reset should forget all presses")
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first frame", time.Time{}, t0, 0},
		{"normal", t0, t0.Add(50 * time.Millisecond), 0.05},
		{"stall clamped", t0, t0.Add(3 * time.Second), 0.25},
		{"clock went back", t0, t0.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.prev, tt.now); got != tt.want {
				t.Errorf("frameDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}
