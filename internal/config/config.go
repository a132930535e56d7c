// Package config provides YAML-based arena configuration loading and
// difficulty presets.
package config

// ArenaConfig contains all tunables of the survival arena.
type ArenaConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Ticks   TickConfig    `yaml:"ticks"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Pickups PickupConfig  `yaml:"pickups"`
	Physics PhysicsConfig `yaml:"physics"`
}

// PlayerConfig defines the player's health and movement.
type PlayerConfig struct {
	MaxHealth     int     `yaml:"max_health"`      // Starting health and heal cap
	SpeedPerFrame float64 `yaml:"speed_per_frame"` // Forward speed gained per frame of thrust
	MaxSpeed      float64 `yaml:"max_speed"`       // Forward speed cap (units/s)
	TurnRate      float64 `yaml:"turn_rate"`       // Radians per second while turning
	Damping       float64 `yaml:"damping"`         // Linear damping coefficient
	Size          float64 `yaml:"size"`            // Hitbox edge length
}

// TickConfig defines the discrete tick cadence and what each tick does.
type TickConfig struct {
	Interval      float64 `yaml:"interval"`        // Seconds of play per tick
	HealthDecay   int     `yaml:"health_decay"`    // Damage taken per tick
	KillModeDecay float64 `yaml:"kill_mode_decay"` // Kill-mode seconds removed per tick
	ScorePerTick  float64 `yaml:"score_per_tick"`  // Score gained per tick survived
}

// Bounds is an axis-aligned region relative to the player position.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// SectorsConfig defines the four off-screen spawn sectors.
type SectorsConfig struct {
	Top    Bounds `yaml:"top"`
	Right  Bounds `yaml:"right"`
	Bottom Bounds `yaml:"bottom"`
	Left   Bounds `yaml:"left"`
}

// SpawnConfig defines what each tick spawns and where.
type SpawnConfig struct {
	EnemiesPerWave int           `yaml:"enemies_per_wave"`
	HealthPerWave  int           `yaml:"health_per_wave"`
	PowerUpOneIn   int           `yaml:"powerup_one_in"` // 1-in-N chance per tick
	Sectors        SectorsConfig `yaml:"sectors"`
	SafeZone       Bounds        `yaml:"safe_zone"` // Visible area no spawn may land in
}

// EnemyConfig defines pursuer behaviour.
type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`          // Pursuit speed (units/s)
	MaxDistance   float64 `yaml:"max_distance"`   // Per-axis despawn distance
	ContactDamage int     `yaml:"contact_damage"` // Damage when touched outside kill mode
	KillScore     float64 `yaml:"kill_score"`     // Score per kill in kill mode
	Size          float64 `yaml:"size"`
	Damping       float64 `yaml:"damping"`
}

// PickupConfig defines health and power-up pickups.
type PickupConfig struct {
	HealthSize      float64 `yaml:"health_size"`
	PowerUpSize     float64 `yaml:"powerup_size"`
	KillModeSeconds float64 `yaml:"kill_mode_seconds"` // Added per power-up
	KillModeCap     float64 `yaml:"kill_mode_cap"`     // Upper bound of the timer
}

// PhysicsConfig defines the fixed physics step.
type PhysicsConfig struct {
	Step float64 `yaml:"step"` // Seconds per physics step
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted difficulty presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
