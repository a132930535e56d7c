package arena

import (
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// PlayerStats is the player's mutable condition for one session.
//
// KillMode is true exactly when KillModeSecondsLeft > 0. Health may go
// negative; Damage reports the moment it first reaches zero or below.
type PlayerStats struct {
	Health              int
	MaxHealth           int
	SpeedPerFrame       float64
	MaxSpeed            float64
	ForwardSpeed        core.Vec2 // in the player's local frame, +X is forward
	KillMode            bool
	KillModeSecondsLeft float64
}

// NewPlayerStats returns full-health stats.
func NewPlayerStats(cfg config.PlayerConfig) PlayerStats {
	return PlayerStats{
		Health:        cfg.MaxHealth,
		MaxHealth:     cfg.MaxHealth,
		SpeedPerFrame: cfg.SpeedPerFrame,
		MaxSpeed:      cfg.MaxSpeed,
	}
}

// Reset restores full health and clears movement and kill mode.
func (s *PlayerStats) Reset() {
	s.Health = s.MaxHealth
	s.ForwardSpeed = core.Vec2{}
	s.KillMode = false
	s.KillModeSecondsLeft = 0
}

// Damage subtracts n health. It returns true only when this call moved
// health from above zero to zero or below.
func (s *PlayerStats) Damage(n int) bool {
	wasAlive := s.Health > 0
	s.Health -= n
	return wasAlive && s.Health <= 0
}

// HealToMax sets health to the maximum regardless of its current value.
func (s *PlayerStats) HealToMax() {
	s.Health = s.MaxHealth
}

// ActivateKillMode adds seconds to the kill-mode timer, capped at limit.
func (s *PlayerStats) ActivateKillMode(seconds, limit float64) {
	s.KillModeSecondsLeft = core.ClampF(s.KillModeSecondsLeft+seconds, 0, limit)
	s.KillMode = s.KillModeSecondsLeft > 0
}

// DecayKillMode removes seconds from the timer, floored at zero. It returns
// true when kill mode ended on this call.
func (s *PlayerStats) DecayKillMode(seconds float64) bool {
	was := s.KillMode
	s.KillModeSecondsLeft = max(s.KillModeSecondsLeft-seconds, 0)
	s.KillMode = s.KillModeSecondsLeft > 0
	return was && !s.KillMode
}

// AddForwardSpeed accelerates forward, clamped to MaxSpeed.
func (s *PlayerStats) AddForwardSpeed(v float64) {
	s.ForwardSpeed.X += v
	if s.ForwardSpeed.X > s.MaxSpeed {
		s.ForwardSpeed.X = s.MaxSpeed
	}
}

// StopForward drops forward speed to zero.
func (s *PlayerStats) StopForward() {
	s.ForwardSpeed = core.Vec2{}
}
