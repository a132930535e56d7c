package tui

import (
	"github.com/aquilax/go-perlin"
)

// Terrain is a static noise field drawn under the arena so movement is
// visible when nothing else is on screen.
type Terrain struct {
	noise *perlin.Perlin
	scale float64 // world units per noise period
}

// NewTerrain creates a terrain field for the given seed.
func NewTerrain(seed int64) *Terrain {
	return &Terrain{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		scale: 420,
	}
}

// Glyph returns the ground character at a world position.
func (t *Terrain) Glyph(wx, wy float64) rune {
	v := t.noise.Noise2D(wx/t.scale, wy/t.scale)
	switch {
	case v > 0.35:
		return '^'
	case v > 0.2:
		return ','
	case v < -0.3:
		return '~'
	case v < -0.2:
		return '.'
	default:
		return ' '
	}
}
