package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/entity"
)

func TestPlayerGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{math.Pi / 4, '↘'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi, '←'},
		{-math.Pi / 2, '↑'},
		{-math.Pi / 4, '↗'},
		{2*math.Pi + 0.1, '→'},
	}

	for _, tt := range tests {
		if got := PlayerGlyph(tt.heading); got != tt.want {
			t.Errorf("PlayerGlyph(%v) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "0"},
		{3, "3"},
		{2.5, "2.5"},
		{1205, "1205"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestWorldToCell(t *testing.T) {
	s := core.NewScreen(80, 24)

	tests := []struct {
		name   string
		center core.Vec2
		p      core.Vec2
		x, y   int
	}{
		{"center", core.V(0, 0), core.V(0, 0), 40, 12},
		{"one cell", core.V(0, 0), core.V(24, 48), 41, 13},
		{"just left and above", core.V(0, 0), core.V(-1, -1), 39, 11},
		{"camera follows", core.V(240, 480), core.V(240, 480), 40, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := WorldToCell(s, tt.center, tt.p)
			if x != tt.x || y != tt.y {
				t.Errorf("WorldToCell() = (%d, %d), want (%d, %d)", x, y, tt.x, tt.y)
			}
		})
	}
}

func drawSnapshot(snap arena.Snapshot, world *entity.Registry, w, h int) *core.Screen {
	s := core.NewScreen(w, h)
	NewView(1).Draw(s, snap, world, 0)
	return s
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		state arena.PlayState
		want  string
	}{
		{arena.StateMenu, "SURVIVAL ARENA"},
		{arena.StatePause, "PAUSED"},
		{arena.StateLose, "YOU DIED"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			snap := arena.Snapshot{State: tt.state, Health: 10, MaxHealth: 10}
			s := drawSnapshot(snap, entity.NewRegistry(), 80, 24)
			if !strings.Contains(s.String(), tt.want) {
				t.Errorf("screen does not contain %q", tt.want)
			}
		})
	}
}

func TestDrawRunPrompt(t *testing.T) {
	early := arena.Snapshot{State: arena.StatePlaying, Health: 10, MaxHealth: 10, Score: 1}
	if s := drawSnapshot(early, entity.NewRegistry(), 80, 24); !strings.Contains(s.String(), "RUN!") {
		t.Error("RUN! should show at the start of a run")
	}

	later := early
	later.Score = 3
	if s := drawSnapshot(later, entity.NewRegistry(), 80, 24); strings.Contains(s.String(), "RUN!") {
		t.Error("RUN! should hide once the player has survived a while")
	}

	paused := early
	paused.State = arena.StatePause
	if s := drawSnapshot(paused, entity.NewRegistry(), 80, 24); strings.Contains(s.String(), "RUN!") {
		t.Error("RUN! should only show while playing")
	}
}

func TestDrawHUD(t *testing.T) {
	snap := arena.Snapshot{
		State:        arena.StatePlaying,
		Health:       -2,
		MaxHealth:    10,
		Score:        12,
		KillMode:     true,
		KillModeLeft: 2.2,
	}
	s := core.NewScreen(80, 24)
	NewView(1).Draw(s, snap, entity.NewRegistry(), 40)

	top := s.Row(0)
	for _, want := range []string{"Health: 0/10", "Score: 12", "Best: 40"} {
		if !strings.Contains(top, want) {
			t.Errorf("top row %q does not contain %q", top, want)
		}
	}
	if row := s.Row(1); !strings.Contains(row, "KILL MODE 3s") {
		t.Errorf("row 1 %q does not show the kill mode timer", row)
	}
}

func TestDrawEntities(t *testing.T) {
	world := entity.NewRegistry()
	world.Spawn(entity.KindPlayer, core.V(0, 0))
	world.Spawn(entity.KindEnemy, core.V(240, 0))
	world.Spawn(entity.KindHealth, core.V(-240, 0))
	world.Spawn(entity.KindPowerUp, core.V(0, 480))

	snap := arena.Snapshot{State: arena.StatePlaying, Health: 10, MaxHealth: 10, Score: 5, PlayerHeading: -math.Pi / 2}
	s := drawSnapshot(snap, world, 80, 24)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"player", 40, 12, '↑'},
		{"enemy", 50, 12, EnemyGlyph},
		{"health", 30, 12, HealthGlyph},
		{"powerup", 40, 22, PowerUpGlyph},
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: cell (%d, %d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawTooSmall(t *testing.T) {
	snap := arena.Snapshot{State: arena.StatePlaying}
	s := drawSnapshot(snap, entity.NewRegistry(), 20, 6)
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Error("small terminals should get a notice")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorEnemy)
	s.DrawText(2, 0, "cd", core.ColorHealth)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}
