package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the reference arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Player: PlayerConfig{
			MaxHealth:     10,
			SpeedPerFrame: 10,
			MaxSpeed:      600,
			TurnRate:      5,
			Damping:       4,
			Size:          16,
		},
		Ticks: TickConfig{
			Interval:      1.0,
			HealthDecay:   1,
			KillModeDecay: 1.0,
			ScorePerTick:  1,
		},
		Spawn: SpawnConfig{
			EnemiesPerWave: 35,
			HealthPerWave:  5,
			PowerUpOneIn:   5,
			Sectors: SectorsConfig{
				Top:    Bounds{MinX: -1920, MaxX: 2050, MinY: -1250, MaxY: -1080},
				Right:  Bounds{MinX: 1080, MaxX: 2150, MinY: -1150, MaxY: 1150},
				Bottom: Bounds{MinX: -2050, MaxX: 2050, MinY: 1080, MaxY: 1250},
				Left:   Bounds{MinX: -2150, MaxX: -1920, MinY: -1180, MaxY: 1150},
			},
			SafeZone: Bounds{MinX: -1920, MaxX: 1080, MinY: -1080, MaxY: 1080},
		},
		Enemy: EnemyConfig{
			Speed:         200,
			MaxDistance:   3000,
			ContactDamage: 2,
			KillScore:     5,
			Size:          32,
			Damping:       7,
		},
		Pickups: PickupConfig{
			HealthSize:      24,
			PowerUpSize:     24,
			KillModeSeconds: 3,
			KillModeCap:     5,
		},
		Physics: PhysicsConfig{
			Step: 1.0 / 30.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
