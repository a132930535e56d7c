package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
)

// World units covered by one terminal cell. Cells are about twice as tall
// as they are wide.
const (
	cellW = 24.0
	cellH = 48.0
)

// Minimum terminal size for the arena view.
const (
	minScreenW = 40
	minScreenH = 12
)

// Entity glyphs
const (
	EnemyGlyph   = 'x'
	HealthGlyph  = '+'
	PowerUpGlyph = '*'
)

// playerGlyphs are indexed by heading octant, starting at +X and turning
// clockwise on screen.
var playerGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// runPromptScore hides the opening prompt once the player has survived
// this long.
const runPromptScore = 3

// View draws the arena from the simulation state.
type View struct {
	terrain *Terrain
}

// NewView creates a view with a terrain derived from seed.
func NewView(seed int64) *View {
	return &View{terrain: NewTerrain(seed)}
}

// PlayerGlyph returns the arrow for a heading in radians.
func PlayerGlyph(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % len(playerGlyphs)
	if octant < 0 {
		octant += len(playerGlyphs)
	}
	return playerGlyphs[octant]
}

// FormatScore prints whole scores without decimals.
func FormatScore(score float64) string {
	if score == math.Trunc(score) {
		return fmt.Sprintf("%.0f", score)
	}
	return fmt.Sprintf("%.1f", score)
}

// WorldToCell maps a world position to a screen cell with the camera
// centered on center.
func WorldToCell(s *core.Screen, center, p core.Vec2) (int, int) {
	x := int(math.Floor(float64(s.Width())/2 + (p.X-center.X)/cellW))
	y := int(math.Floor(float64(s.Height())/2 + (p.Y-center.Y)/cellH))
	return x, y
}

// Draw renders the whole frame.
func (v *View) Draw(s *core.Screen, snap arena.Snapshot, world *entity.Registry, best float64) {
	s.Clear()

	if s.Width() < minScreenW || s.Height() < minScreenH {
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorText)
		return
	}

	v.drawGround(s, snap.PlayerPos)
	v.drawEntities(s, snap, world)
	v.drawHUD(s, snap, best)

	switch snap.State {
	case arena.StateMenu:
		drawOverlay(s, []string{
			"SURVIVAL ARENA",
			"",
			"Outlast the horde.",
			"Health drains every second.",
			"+ heals   * kill mode",
			"",
			"W thrust  A/D turn  P pause",
			"",
			"Press SPACE to start",
		})
	case arena.StatePause:
		drawOverlay(s, []string{
			"PAUSED",
			"",
			"SPACE resume   M menu   Q quit",
		})
	case arena.StateLose:
		drawOverlay(s, []string{
			"YOU DIED",
			"",
			fmt.Sprintf("Score: %s   Kills: %d", FormatScore(snap.Score), snap.Kills),
			"",
			"SPACE restart   M menu   Q quit",
		})
	}
}

func (v *View) drawGround(s *core.Screen, center core.Vec2) {
	halfW, halfH := float64(s.Width())/2, float64(s.Height())/2
	for y := range s.Height() {
		// Snap to world cells so the ground scrolls instead of shimmering.
		wy := math.Floor((center.Y+(float64(y)-halfH)*cellH)/cellH) * cellH
		for x := range s.Width() {
			wx := math.Floor((center.X+(float64(x)-halfW)*cellW)/cellW) * cellW
			if g := v.terrain.Glyph(wx, wy); g != ' ' {
				s.SetColored(x, y, g, core.ColorGround)
			}
		}
	}
}

func (v *View) drawEntities(s *core.Screen, snap arena.Snapshot, world *entity.Registry) {
	for _, e := range world.All() {
		var glyph rune
		var color core.Color
		switch e.Kind {
		case entity.KindEnemy:
			glyph, color = EnemyGlyph, core.ColorEnemy
		case entity.KindHealth:
			glyph, color = HealthGlyph, core.ColorHealth
		case entity.KindPowerUp:
			glyph, color = PowerUpGlyph, core.ColorPowerUp
		default:
			continue
		}
		x, y := WorldToCell(s, snap.PlayerPos, e.Pos)
		s.SetColored(x, y, glyph, color)
	}

	// Player last so it is never hidden.
	color := core.ColorPlayer
	if snap.KillMode {
		color = core.ColorPowerUp
	}
	x, y := WorldToCell(s, snap.PlayerPos, snap.PlayerPos)
	s.SetColored(x, y, PlayerGlyph(snap.PlayerHeading), color)
}

func (v *View) drawHUD(s *core.Screen, snap arena.Snapshot, best float64) {
	health := fmt.Sprintf(" Health: %d/%d ", max(snap.Health, 0), snap.MaxHealth)
	s.DrawText(0, 0, health, core.ColorPlayer)

	score := fmt.Sprintf(" Score: %s ", FormatScore(snap.Score))
	s.DrawText(len(health)+1, 0, score, core.ColorScore)

	if best > 0 {
		hi := fmt.Sprintf(" Best: %s ", FormatScore(best))
		s.DrawText(s.Width()-len(hi), 0, hi, core.ColorDim)
	}

	if snap.KillMode {
		s.DrawTextCentered(1, fmt.Sprintf("KILL MODE %.0fs", math.Ceil(snap.KillModeLeft)), core.ColorPowerUp)
	}

	if snap.State == arena.StatePlaying && snap.Score < runPromptScore {
		s.DrawTextCentered(s.Height()/2-3, "RUN!", core.ColorEnemy)
	}
}

// drawOverlay draws a framed text box in the middle of the screen.
func drawOverlay(s *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	left := (s.Width() - width) / 2
	top := (s.Height() - height) / 2

	border := "+" + strings.Repeat("-", width-2) + "+"
	s.DrawText(left, top, border, core.ColorDim)
	for i, l := range lines {
		row := "| " + l + strings.Repeat(" ", width-4-len([]rune(l))) + " |"
		s.DrawText(left, top+1+i, row, core.ColorText)
	}
	s.DrawText(left, top+height-1, border, core.ColorDim)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
