package arena

import (
	"sort"

	"github.com/vovakirdan/tui-arena/internal/entity"
)

// CollisionResolver applies the effects of the player touching other
// entities. The touched entity is always consumed.
type CollisionResolver struct {
	ContactDamage   int
	KillScore       float64
	KillModeSeconds float64
	KillModeCap     float64
}

// NewCollisionResolver builds a resolver from the context's config.
func NewCollisionResolver(ctx *Context) CollisionResolver {
	return CollisionResolver{
		ContactDamage:   ctx.Config.Enemy.ContactDamage,
		KillScore:       ctx.Config.Enemy.KillScore,
		KillModeSeconds: ctx.Config.Pickups.KillModeSeconds,
		KillModeCap:     ctx.Config.Pickups.KillModeCap,
	}
}

// stage orders effect kinds within one frame: heals, then enemy contact,
// then power-ups.
func stage(k entity.Kind) int {
	switch k {
	case entity.KindHealth:
		return 0
	case entity.KindEnemy:
		return 1
	default:
		return 2
	}
}

// Resolve handles a batch of overlaps reported in one frame. The result
// does not depend on the order the overlaps arrive in. It returns how
// many entities were consumed.
func (r CollisionResolver) Resolve(ctx *Context, others []entity.ID) int {
	live := make([]*entity.Entity, 0, len(others))
	for _, id := range others {
		if e, ok := ctx.World.Get(id); ok && e.Kind != entity.KindPlayer {
			live = append(live, e)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		if si, sj := stage(live[i].Kind), stage(live[j].Kind); si != sj {
			return si < sj
		}
		return live[i].ID < live[j].ID
	})

	consumed := 0
	for _, e := range live {
		if r.OnOverlap(ctx, e.ID) {
			consumed++
		}
	}
	return consumed
}

// OnOverlap applies one contact. Entities that are already gone, and the
// player itself, are ignored. It returns true if the entity was consumed.
func (r CollisionResolver) OnOverlap(ctx *Context, other entity.ID) bool {
	e, ok := ctx.World.Get(other)
	if !ok || e.Kind == entity.KindPlayer {
		return false
	}

	switch e.Kind {
	case entity.KindHealth:
		ctx.Stats.HealToMax()
		ctx.Emit(CueHealthPickup)
	case entity.KindEnemy:
		if ctx.Stats.KillMode {
			ctx.Score += r.KillScore
			ctx.Kills++
			ctx.Emit(CueEnemyCollisionKillMode)
		} else {
			ctx.Damage(r.ContactDamage)
			ctx.Emit(CueEnemyCollisionDamage)
		}
	case entity.KindPowerUp:
		ctx.Stats.HealToMax()
		ctx.Stats.ActivateKillMode(r.KillModeSeconds, r.KillModeCap)
		ctx.Emit(CuePowerupPickup)
	}

	return ctx.World.Despawn(other)
}
