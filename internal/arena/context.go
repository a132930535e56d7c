package arena

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
)

// Context is the explicit simulation state passed to every system.
// Systems mutate it; nothing else is shared between them.
type Context struct {
	Config config.ArenaConfig
	State  *StateMachine
	Stats  PlayerStats
	Ticks  TickScheduler
	World  *entity.Registry
	Player entity.ID

	Score         float64
	Kills         int
	TicksSurvived int

	// Pending per-frame output, drained by the simulation.
	cues        []Cue
	transitions []StateChanged
	depleted    bool
}

// InitialHeading points the player up the screen.
const InitialHeading = -math.Pi / 2

// NewContext builds a fresh context in the menu with the player at the
// origin.
func NewContext(cfg config.ArenaConfig) *Context {
	ctx := &Context{
		Config: cfg,
		State:  NewStateMachine(),
		Stats:  NewPlayerStats(cfg.Player),
		Ticks:  NewTickScheduler(cfg.Ticks.Interval),
		World:  entity.NewRegistry(),
	}
	ctx.Player = ctx.World.Spawn(entity.KindPlayer, core.Vec2{})
	ctx.PlayerEntity().Heading = InitialHeading
	return ctx
}

// PlayerEntity returns the persistent player entity.
func (c *Context) PlayerEntity() *entity.Entity {
	e, _ := c.World.Get(c.Player)
	return e
}

// PlayerPos returns the player position.
func (c *Context) PlayerPos() core.Vec2 {
	return c.PlayerEntity().Pos
}

// Emit queues a cue for the presentation layer.
func (c *Context) Emit(cue Cue) {
	c.cues = append(c.cues, cue)
}

// Damage applies damage and records the depletion signal, if any.
func (c *Context) Damage(n int) {
	if c.Stats.Damage(n) {
		c.depleted = true
	}
}

// Depleted reports whether health reached zero and Lose is still pending.
func (c *Context) Depleted() bool {
	return c.depleted
}

// PendingCues returns cues raised since the last frame.
func (c *Context) PendingCues() []Cue {
	return c.cues
}

func (c *Context) request(to PlayState) bool {
	ev, ok := c.State.Request(to)
	if ok {
		c.transitions = append(c.transitions, ev)
	}
	return ok
}

func (c *Context) drain() ([]Cue, []StateChanged) {
	cues, trans := c.cues, c.transitions
	c.cues, c.transitions = nil, nil
	return cues, trans
}
