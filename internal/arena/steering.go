package arena

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
)

// Steering points every enemy at the player and removes enemies that
// have fallen too far behind.
type Steering struct {
	Speed       float64
	MaxDistance float64
}

// NewSteering builds enemy steering from the context's config.
func NewSteering(ctx *Context) Steering {
	return Steering{
		Speed:       ctx.Config.Enemy.Speed,
		MaxDistance: ctx.Config.Enemy.MaxDistance,
	}
}

// Step runs one pass over the enemies. It does nothing outside Playing
// and returns how many enemies were despawned.
func (s Steering) Step(ctx *Context) int {
	if ctx.State.Current() != StatePlaying {
		return 0
	}

	target := ctx.PlayerPos()
	despawned := 0
	for _, e := range ctx.World.OfKind(entity.KindEnemy) {
		d := target.Sub(e.Pos)
		if math.Abs(d.X) > s.MaxDistance || math.Abs(d.Y) > s.MaxDistance {
			if ctx.World.Despawn(e.ID) {
				despawned++
			}
			continue
		}
		if d.X == 0 && d.Y == 0 {
			continue
		}
		e.Heading = math.Atan2(d.Y, d.X)
		e.Vel = core.Heading(e.Heading).Scale(s.Speed)
	}
	return despawned
}
