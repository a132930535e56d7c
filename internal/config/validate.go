package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks the values the simulation depends on to make progress.
// All problems are reported together.
func (c ArenaConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, msg string) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: msg})
		}
	}

	check(c.Player.MaxHealth > 0, "player.max_health", "must be positive")
	check(c.Player.MaxSpeed >= 0, "player.max_speed", "must not be negative")
	check(c.Ticks.Interval > 0, "ticks.interval", "must be positive")
	check(c.Physics.Step > 0, "physics.step", "must be positive")
	check(c.Spawn.EnemiesPerWave >= 0, "spawn.enemies_per_wave", "must not be negative")
	check(c.Spawn.HealthPerWave >= 0, "spawn.health_per_wave", "must not be negative")
	check(c.Spawn.PowerUpOneIn >= 1, "spawn.powerup_one_in", "must be at least 1")
	check(c.Enemy.MaxDistance > 0, "enemy.max_distance", "must be positive")
	check(c.Pickups.KillModeCap >= 0, "pickups.kill_mode_cap", "must not be negative")

	sectors := []struct {
		name string
		b    Bounds
	}{
		{"spawn.sectors.top", c.Spawn.Sectors.Top},
		{"spawn.sectors.right", c.Spawn.Sectors.Right},
		{"spawn.sectors.bottom", c.Spawn.Sectors.Bottom},
		{"spawn.sectors.left", c.Spawn.Sectors.Left},
	}
	for _, s := range sectors {
		check(s.b.MinX <= s.b.MaxX && s.b.MinY <= s.b.MaxY, s.name, "min must not exceed max")
	}

	return errors.Join(errs...)
}
