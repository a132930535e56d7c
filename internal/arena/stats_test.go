package arena

import (
	"testing"

	"github.com/vovakirdan/tui-arena/internal/config"
)

func newStats() PlayerStats {
	return NewPlayerStats(config.DefaultArenaConfig().Player)
}

func TestHealToMax(t *testing.T) {
	for _, start := range []int{3, 0, -2, 10} {
		s := newStats()
		s.Health = start
		s.HealToMax()
		if s.Health != 10 {
			t.Errorf("HealToMax() from %d = %d, expected 10", start, s.Health)
		}
	}
}

func TestDamageSignalsOnce(t *testing.T) {
	s := newStats()
	s.Health = 1

	if !s.Damage(1) {
		t.Error("Damage(1) at health 1 should signal depletion")
	}
	if s.Damage(1) {
		t.Error("Damage() below zero should not signal again")
	}
	if s.Health != -1 {
		t.Errorf("Health = %d, expected -1", s.Health)
	}

	s.Health = 2
	if !s.Damage(5) {
		t.Error("overshooting damage should signal depletion")
	}

	s.Health = 5
	if s.Damage(2) {
		t.Error("Damage() that leaves health positive should not signal")
	}
}

func TestKillModeCap(t *testing.T) {
	tests := []struct {
		activations int
		want        float64
	}{
		{1, 3},
		{2, 5},
		{3, 5},
	}

	for _, tc := range tests {
		s := newStats()
		for range tc.activations {
			s.ActivateKillMode(3, 5)
		}
		if s.KillModeSecondsLeft != tc.want {
			t.Errorf("%d activations: seconds = %v, expected %v", tc.activations, s.KillModeSecondsLeft, tc.want)
		}
		if !s.KillMode {
			t.Errorf("%d activations: kill mode should be on", tc.activations)
		}
	}
}

func TestDecayKillMode(t *testing.T) {
	s := newStats()
	s.ActivateKillMode(3, 5)

	for i := range 2 {
		if s.DecayKillMode(1) {
			t.Fatalf("decay %d reported expiry early", i+1)
		}
	}
	if !s.DecayKillMode(1) {
		t.Error("third decay should report expiry")
	}
	if s.KillMode || s.KillModeSecondsLeft != 0 {
		t.Errorf("after expiry: kill=%v seconds=%v", s.KillMode, s.KillModeSecondsLeft)
	}
	if s.DecayKillMode(1) {
		t.Error("decay while inactive should not report expiry")
	}
	if s.KillModeSecondsLeft != 0 {
		t.Errorf("seconds went below zero: %v", s.KillModeSecondsLeft)
	}
}

func TestDecayKillModeFloor(t *testing.T) {
	s := newStats()
	s.KillModeSecondsLeft = 0.5
	s.KillMode = true

	if !s.DecayKillMode(1) {
		t.Error("partial second should expire")
	}
	if s.KillModeSecondsLeft != 0 {
		t.Errorf("seconds = %v, expected 0", s.KillModeSecondsLeft)
	}
}

func TestForwardSpeedCap(t *testing.T) {
	s := newStats()
	for range 100 {
		s.AddForwardSpeed(s.SpeedPerFrame)
	}
	if s.ForwardSpeed.X != 600 {
		t.Errorf("ForwardSpeed = %v, expected 600", s.ForwardSpeed.X)
	}

	s.StopForward()
	if s.ForwardSpeed.X != 0 {
		t.Errorf("after StopForward() speed = %v", s.ForwardSpeed.X)
	}
}

func TestStatsReset(t *testing.T) {
	s := newStats()
	s.Health = 1
	s.ActivateKillMode(3, 5)
	s.AddForwardSpeed(50)

	s.Reset()

	if s.Health != 10 || s.KillMode || s.KillModeSecondsLeft != 0 || s.ForwardSpeed.X != 0 {
		t.Errorf("Reset() left %+v", s)
	}
}
