package arena

import (
	"math/rand"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
)

// Sector is one of the four off-screen spawn regions around the player.
type Sector uint8

const (
	SectorTop Sector = iota
	SectorRight
	SectorBottom
	SectorLeft
)

// Sectors lists every sector.
var Sectors = []Sector{SectorTop, SectorRight, SectorBottom, SectorLeft}

func (s Sector) String() string {
	switch s {
	case SectorTop:
		return "top"
	case SectorRight:
		return "right"
	case SectorBottom:
		return "bottom"
	default:
		return "left"
	}
}

// SpawnRequest asks the simulation to create one entity.
type SpawnRequest struct {
	Kind   entity.Kind
	Pos    core.Vec2
	Sector Sector
}

// SpawnDirector picks spawn positions outside the visible area. All
// randomness comes from its own seeded source.
type SpawnDirector struct {
	cfg config.SpawnConfig
	rng *rand.Rand
}

// NewSpawnDirector creates a director with a deterministic source.
func NewSpawnDirector(cfg config.SpawnConfig, seed int64) *SpawnDirector {
	return &SpawnDirector{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
	}
}

// Reseed replaces the random source.
func (d *SpawnDirector) Reseed(seed int64) {
	d.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
}

func (d *SpawnDirector) bounds(s Sector) config.Bounds {
	switch s {
	case SectorTop:
		return d.cfg.Sectors.Top
	case SectorRight:
		return d.cfg.Sectors.Right
	case SectorBottom:
		return d.cfg.Sectors.Bottom
	default:
		return d.cfg.Sectors.Left
	}
}

func relative(b config.Bounds, p core.Vec2) core.Rect {
	return core.RectFromBounds(p.X+b.MinX, p.X+b.MaxX, p.Y+b.MinY, p.Y+b.MaxY)
}

// SectorBounds returns the world-space rectangle of a sector.
func (d *SpawnDirector) SectorBounds(s Sector, playerPos core.Vec2) core.Rect {
	return relative(d.bounds(s), playerPos)
}

// SafeZone returns the world-space area where no spawn may land.
func (d *SpawnDirector) SafeZone(playerPos core.Vec2) core.Rect {
	return relative(d.cfg.SafeZone, playerPos)
}

// SampleIn draws a point uniformly from [min, max) on both axes of the
// sector.
func (d *SpawnDirector) SampleIn(s Sector, playerPos core.Vec2) core.Vec2 {
	r := d.SectorBounds(s, playerPos)
	return core.V(
		r.X+d.rng.Float64()*r.W,
		r.Y+d.rng.Float64()*r.H,
	)
}

// Sample picks a sector uniformly and a point inside it.
func (d *SpawnDirector) Sample(playerPos core.Vec2) (core.Vec2, Sector) {
	s := Sector(d.rng.Intn(len(Sectors))) //#nosec G115 -- bounded by sector count
	return d.SampleIn(s, playerPos), s
}

// OnTick returns one wave: enemies first, then health pickups, then a
// power-up with a 1-in-N chance.
func (d *SpawnDirector) OnTick(playerPos core.Vec2) []SpawnRequest {
	out := make([]SpawnRequest, 0, d.cfg.EnemiesPerWave+d.cfg.HealthPerWave+1)

	for range d.cfg.EnemiesPerWave {
		pos, s := d.Sample(playerPos)
		out = append(out, SpawnRequest{Kind: entity.KindEnemy, Pos: pos, Sector: s})
	}
	for range d.cfg.HealthPerWave {
		pos, s := d.Sample(playerPos)
		out = append(out, SpawnRequest{Kind: entity.KindHealth, Pos: pos, Sector: s})
	}
	if d.cfg.PowerUpOneIn > 0 && d.rng.Intn(d.cfg.PowerUpOneIn) == 0 {
		pos, s := d.Sample(playerPos)
		out = append(out, SpawnRequest{Kind: entity.KindPowerUp, Pos: pos, Sector: s})
	}
	return out
}
