// Package entity holds the arena's live objects: one persistent player and
// any number of transient enemies and pickups, keyed by stable IDs.
package entity

import "github.com/vovakirdan/tui-arena/internal/core"

// Kind tags what an entity is. The set is closed.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindHealth
	KindPowerUp
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindHealth:
		return "health"
	case KindPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Transient reports whether entities of this kind are created by spawning
// and removed on restart.
func (k Kind) Transient() bool {
	return k != KindPlayer
}

// ID identifies an entity for its whole lifetime. IDs are never reused
// within a registry, so a stale ID can never alias a newer entity.
type ID uint64

// None is the zero ID; no live entity has it.
const None ID = 0

// Entity is a single object in the arena.
type Entity struct {
	ID      ID
	Kind    Kind
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64 // radians, 0 = +X
	AngVel  float64 // radians per second
}
