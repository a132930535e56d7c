// Package physics integrates entity motion and reports player contacts
// using axis-aligned boxes sized per entity kind.
package physics

import (
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
)

// Engine is a minimal kinematic engine. Contacts are reported once, when
// they begin; an overlap that persists is not reported again.
type Engine struct {
	sizes    [4]float64
	damping  [4]float64
	contacts map[entity.ID]struct{}
}

// New creates an engine with hitbox sizes and damping from cfg.
func New(cfg config.ArenaConfig) *Engine {
	e := &Engine{contacts: make(map[entity.ID]struct{})}

	e.sizes[entity.KindPlayer] = cfg.Player.Size
	e.sizes[entity.KindEnemy] = cfg.Enemy.Size
	e.sizes[entity.KindHealth] = cfg.Pickups.HealthSize
	e.sizes[entity.KindPowerUp] = cfg.Pickups.PowerUpSize

	e.damping[entity.KindPlayer] = cfg.Player.Damping
	e.damping[entity.KindEnemy] = cfg.Enemy.Damping
	return e
}

// Hitbox returns the collision box of an entity.
func (e *Engine) Hitbox(ent *entity.Entity) core.Rect {
	s := e.sizes[ent.Kind]
	return core.RectAround(ent.Pos, s, s)
}

// Integrate advances every entity by dt seconds, then applies damping.
func (e *Engine) Integrate(reg *entity.Registry, dt float64) {
	if dt <= 0 {
		return
	}
	for _, ent := range reg.All() {
		ent.Pos = ent.Pos.Add(ent.Vel.Scale(dt))
		ent.Heading += ent.AngVel * dt
		if c := e.damping[ent.Kind]; c > 0 {
			ent.Vel = ent.Vel.Scale(1 / (1 + dt*c))
		}
	}
}

// Overlaps returns entities whose contact with the player began since the
// previous call, in registry order.
func (e *Engine) Overlaps(reg *entity.Registry, player entity.ID) []entity.ID {
	p, ok := reg.Get(player)
	if !ok {
		e.Reset()
		return nil
	}
	box := e.Hitbox(p)

	current := make(map[entity.ID]struct{}, len(e.contacts))
	var begun []entity.ID
	for _, ent := range reg.All() {
		if ent.ID == player || !box.Intersects(e.Hitbox(ent)) {
			continue
		}
		current[ent.ID] = struct{}{}
		if _, seen := e.contacts[ent.ID]; !seen {
			begun = append(begun, ent.ID)
		}
	}
	e.contacts = current
	return begun
}

// Reset forgets all active contacts.
func (e *Engine) Reset() {
	clear(e.contacts)
}
