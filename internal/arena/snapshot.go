package arena

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
)

// Snapshot is a read-only view of the simulation for rendering and tests.
type Snapshot struct {
	State         PlayState
	Health        int
	MaxHealth     int
	KillMode      bool
	KillModeLeft  float64
	Score         float64
	Kills         int
	TicksSurvived int
	Ticking       bool
	TickRemainder float64

	PlayerPos     core.Vec2
	PlayerVel     core.Vec2
	PlayerHeading float64

	Enemies       int
	HealthPickups int
	PowerUps      int
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	ctx := s.ctx
	p := ctx.PlayerEntity()
	return Snapshot{
		State:         ctx.State.Current(),
		Health:        ctx.Stats.Health,
		MaxHealth:     ctx.Stats.MaxHealth,
		KillMode:      ctx.Stats.KillMode,
		KillModeLeft:  ctx.Stats.KillModeSecondsLeft,
		Score:         ctx.Score,
		Kills:         ctx.Kills,
		TicksSurvived: ctx.TicksSurvived,
		Ticking:       ctx.Ticks.Enabled(),
		TickRemainder: ctx.Ticks.Remainder(),
		PlayerPos:     p.Pos,
		PlayerVel:     p.Vel,
		PlayerHeading: p.Heading,
		Enemies:       ctx.World.Count(entity.KindEnemy),
		HealthPickups: ctx.World.Count(entity.KindHealth),
		PowerUps:      ctx.World.Count(entity.KindPowerUp),
	}
}

// Hash folds the snapshot into a single value for determinism checks.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.State)
	h = h*31 + uint64(snap.Health)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TicksSurvived) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Enemies)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HealthPickups) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUps)      //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.Score, snap.KillModeLeft, snap.TickRemainder,
		snap.PlayerPos.X, snap.PlayerPos.Y, snap.PlayerHeading,
	} {
		h = h*31 + math.Float64bits(f)
	}
	if snap.KillMode {
		h = h*31 + 1
	}
	return h
}

// HashWorld folds every entity position into a value, in spawn order.
func HashWorld(reg *entity.Registry) uint64 {
	var h uint64
	for _, e := range reg.All() {
		h = h*31 + uint64(e.ID)
		h = h*31 + uint64(e.Kind)
		h = h*31 + math.Float64bits(e.Pos.X)
		h = h*31 + math.Float64bits(e.Pos.Y)
	}
	return h
}
