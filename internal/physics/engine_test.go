package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
)

func TestIntegrateMovesAndDamps(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	eng := New(cfg)
	reg := entity.NewRegistry()

	id := reg.Spawn(entity.KindEnemy, core.V(0, 0))
	e, _ := reg.Get(id)
	e.Vel = core.V(100, 0)

	eng.Integrate(reg, 0.5)

	if e.Pos.X != 50 {
		t.Errorf("Pos.X = %v, expected 50", e.Pos.X)
	}
	want := 100 / (1 + 0.5*cfg.Enemy.Damping)
	if math.Abs(e.Vel.X-want) > 1e-9 {
		t.Errorf("Vel.X = %v, expected %v", e.Vel.X, want)
	}
}

func TestIntegrateHeading(t *testing.T) {
	eng := New(config.DefaultArenaConfig())
	reg := entity.NewRegistry()
	id := reg.Spawn(entity.KindPlayer, core.Vec2{})
	p, _ := reg.Get(id)
	p.AngVel = 2

	eng.Integrate(reg, 0.25)

	if p.Heading != 0.5 {
		t.Errorf("Heading = %v, expected 0.5", p.Heading)
	}
}

func TestPickupsAreNotDamped(t *testing.T) {
	eng := New(config.DefaultArenaConfig())
	reg := entity.NewRegistry()
	id := reg.Spawn(entity.KindHealth, core.Vec2{})
	h, _ := reg.Get(id)
	h.Vel = core.V(0, 10)

	eng.Integrate(reg, 1)

	if h.Vel.Y != 10 {
		t.Errorf("Vel.Y = %v, expected 10", h.Vel.Y)
	}
}

func TestOverlapsReportsBeginOnly(t *testing.T) {
	eng := New(config.DefaultArenaConfig())
	reg := entity.NewRegistry()
	player := reg.Spawn(entity.KindPlayer, core.Vec2{})
	near := reg.Spawn(entity.KindEnemy, core.V(10, 0))
	reg.Spawn(entity.KindEnemy, core.V(500, 0))

	got := eng.Overlaps(reg, player)
	if len(got) != 1 || got[0] != near {
		t.Fatalf("first Overlaps() = %v, expected [%d]", got, near)
	}

	if got := eng.Overlaps(reg, player); len(got) != 0 {
		t.Errorf("persisting contact reported again: %v", got)
	}

	// Separate and touch again.
	e, _ := reg.Get(near)
	e.Pos = core.V(200, 0)
	eng.Overlaps(reg, player)
	e.Pos = core.V(5, 0)
	if got := eng.Overlaps(reg, player); len(got) != 1 {
		t.Errorf("new contact after separation = %v, expected one", got)
	}
}

func TestOverlapsTouchingEdgesDoNotCount(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	eng := New(cfg)
	reg := entity.NewRegistry()
	player := reg.Spawn(entity.KindPlayer, core.Vec2{})
	// Player half-size 8 plus enemy half-size 16.
	reg.Spawn(entity.KindEnemy, core.V(cfg.Player.Size/2+cfg.Enemy.Size/2, 0))

	if got := eng.Overlaps(reg, player); len(got) != 0 {
		t.Errorf("touching boxes reported as overlap: %v", got)
	}
}

func TestResetForgetsContacts(t *testing.T) {
	eng := New(config.DefaultArenaConfig())
	reg := entity.NewRegistry()
	player := reg.Spawn(entity.KindPlayer, core.Vec2{})
	reg.Spawn(entity.KindHealth, core.Vec2{})

	eng.Overlaps(reg, player)
	eng.Reset()

	if got := eng.Overlaps(reg, player); len(got) != 1 {
		t.Errorf("after Reset() Overlaps() = %v, expected one contact", got)
	}
}
