// Package arena implements the survival arena simulation: the state
// machine, tick pacing, wave spawning, enemy pursuit and collision
// effects. It has no dependency on terminals, audio or storage; the
// presentation layer consumes FrameResult and Snapshot.
package arena

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
	"github.com/vovakirdan/tui-arena/internal/physics"
)

// Physics is the engine the simulation steps and queries for contacts.
type Physics interface {
	Integrate(reg *entity.Registry, dt float64)
	Overlaps(reg *entity.Registry, player entity.ID) []entity.ID
	Reset()
}

// Options configures a Simulation.
type Options struct {
	Seed    int64
	Physics Physics     // nil uses physics.New
	Logger  *log.Logger // nil discards
}

// FrameResult reports what happened during one frame.
type FrameResult struct {
	State       PlayState
	Ticks       int
	Spawned     int
	Despawned   int // enemies removed for distance
	Consumed    int // entities removed by contact
	Cues        []Cue
	Transitions []StateChanged
}

// Simulation runs the arena one frame at a time.
type Simulation struct {
	ctx      *Context
	spawner  *SpawnDirector
	steering Steering
	movement Movement
	resolver CollisionResolver
	physics  Physics
	logger   *log.Logger

	seed       int64
	physicsAcc float64
	waves      int
}

// New creates a simulation in the menu.
func New(cfg config.ArenaConfig, opts Options) *Simulation {
	ctx := NewContext(cfg)

	s := &Simulation{
		ctx:      ctx,
		spawner:  NewSpawnDirector(cfg.Spawn, opts.Seed),
		steering: NewSteering(ctx),
		movement: Movement{TurnRate: cfg.Player.TurnRate},
		resolver: NewCollisionResolver(ctx),
		physics:  opts.Physics,
		logger:   opts.Logger,
		seed:     opts.Seed,
	}
	if s.physics == nil {
		s.physics = physics.New(cfg)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Context exposes the simulation state. Callers may read it freely;
// mutations outside Frame bypass the state machine.
func (s *Simulation) Context() *Context {
	return s.ctx
}

// World returns the entity registry.
func (s *Simulation) World() *entity.Registry {
	return s.ctx.World
}

// State returns the current play state.
func (s *Simulation) State() PlayState {
	return s.ctx.State.Current()
}

// Seed returns the seed the spawn source was created with.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Frame advances the simulation by dt seconds of wall time.
//
// Order: controls and movement, ticks, spawns, fixed physics steps with
// steering, contacts, then the pending death transition.
func (s *Simulation) Frame(in core.InputFrame, dt float64) FrameResult {
	ctx := s.ctx
	var res FrameResult

	s.handleControls(in)
	s.movement.Apply(ctx, in)

	res.Ticks = ctx.Ticks.Advance(ctx.State.Current(), dt)
	for range res.Ticks {
		s.onTick()
	}
	// One wave per tick, placed after all ticks of the frame.
	for range res.Ticks {
		res.Spawned += s.spawnWave()
	}

	if ctx.State.Current() == StatePlaying {
		step := ctx.Config.Physics.Step
		s.physicsAcc += dt
		for s.physicsAcc >= step {
			s.physicsAcc -= step
			res.Despawned += s.steering.Step(ctx)
			s.physics.Integrate(ctx.World, step)
		}

		wasKillMode := ctx.Stats.KillMode
		res.Consumed = s.resolver.Resolve(ctx, s.physics.Overlaps(ctx.World, ctx.Player))
		if ctx.Stats.KillMode && !wasKillMode {
			s.logger.Debug("kill mode activated", "seconds", ctx.Stats.KillModeSecondsLeft)
		}
	}

	if ctx.depleted {
		ctx.depleted = false
		s.Request(StateLose)
	}

	res.State = ctx.State.Current()
	res.Cues, res.Transitions = ctx.drain()
	return res
}

// onTick applies one tick's decay and score.
func (s *Simulation) onTick() {
	ctx := s.ctx
	t := ctx.Config.Ticks

	ctx.TicksSurvived++
	ctx.Damage(t.HealthDecay)
	if ctx.Stats.DecayKillMode(t.KillModeDecay) {
		s.logger.Debug("kill mode expired", "tick", ctx.TicksSurvived)
	}
	ctx.Score += t.ScorePerTick
}

func (s *Simulation) spawnWave() int {
	reqs := s.spawner.OnTick(s.ctx.PlayerPos())
	for _, r := range reqs {
		s.ctx.World.Spawn(r.Kind, r.Pos)
	}
	s.waves++
	s.logger.Debug("wave spawned", "wave", s.waves, "entities", len(reqs), "alive", s.ctx.World.Len())
	return len(reqs)
}

func (s *Simulation) handleControls(in core.InputFrame) {
	switch s.ctx.State.Current() {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			s.Request(StatePlaying)
		}
	case StatePause, StateLose:
		if in.Has(core.ActionConfirm) {
			s.Request(StatePlaying)
		} else if in.Has(core.ActionMenu) {
			s.Request(StateMenu)
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			s.Request(StatePause)
		} else if in.Has(core.ActionMenu) {
			s.Request(StateMenu)
		}
	}
}

// Request asks for a state change and applies its side effects. Rejected
// requests return false and change nothing.
//
// Playing from Menu starts, from Pause resumes, and from Lose or Playing
// restarts. Entering Menu ends the session.
func (s *Simulation) Request(to PlayState) bool {
	ctx := s.ctx
	from := ctx.State.Current()
	if _, ok := Transition(from, to); !ok {
		return false
	}

	switch to {
	case StatePlaying:
		switch from {
		case StateLose, StatePlaying:
			s.Restart()
			return true
		case StateMenu:
			ctx.request(to)
			ctx.Ticks.Start()
			s.logger.Info("game started", "seed", s.seed)
		default:
			ctx.request(to)
			ctx.Ticks.Start()
			s.logger.Info("game resumed", "score", ctx.Score)
		}
		ctx.Emit(CueGameStart)
	case StateMenu:
		ctx.request(to)
		s.resetSession()
		s.logger.Info("returned to menu")
	case StatePause:
		ctx.request(to)
		s.logger.Info("game paused", "score", ctx.Score)
	case StateLose:
		ctx.request(to)
		ctx.Emit(CueDeath)
		s.logger.Info("player died", "score", ctx.Score, "ticks", ctx.TicksSurvived, "kills", ctx.Kills)
	}
	return true
}

// Restart clears the session and starts playing from any state.
func (s *Simulation) Restart() {
	s.resetSession()
	s.ctx.request(StatePlaying)
	s.ctx.Ticks.Restart()
	s.ctx.Emit(CueGameStart)
	s.logger.Info("game restarted", "seed", s.seed)
}

// resetSession removes transient entities and restores the player,
// stats, score and pacing. Ticking is left disabled.
func (s *Simulation) resetSession() {
	ctx := s.ctx

	ctx.World.DespawnTransient()
	p := ctx.PlayerEntity()
	p.Pos = core.Vec2{}
	p.Vel = core.Vec2{}
	p.Heading = InitialHeading
	p.AngVel = 0

	ctx.Stats.Reset()
	ctx.Score = 0
	ctx.Kills = 0
	ctx.TicksSurvived = 0
	ctx.Ticks.Reset()
	ctx.depleted = false

	s.physicsAcc = 0
	s.waves = 0
	s.physics.Reset()
}
