package arena

// Cue is a presentation signal raised by the simulation. The core never
// plays sound itself.
type Cue uint8

const (
	CueHealthPickup Cue = iota
	CuePowerupPickup
	CueEnemyCollisionDamage
	CueEnemyCollisionKillMode
	CueDeath
	CueGameStart
)

// Cues lists every cue kind.
var Cues = []Cue{
	CueHealthPickup,
	CuePowerupPickup,
	CueEnemyCollisionDamage,
	CueEnemyCollisionKillMode,
	CueDeath,
	CueGameStart,
}

func (c Cue) String() string {
	switch c {
	case CueHealthPickup:
		return "health_pickup"
	case CuePowerupPickup:
		return "powerup_pickup"
	case CueEnemyCollisionDamage:
		return "enemy_damage"
	case CueEnemyCollisionKillMode:
		return "enemy_kill"
	case CueDeath:
		return "death"
	case CueGameStart:
		return "game_start"
	default:
		return "unknown"
	}
}
