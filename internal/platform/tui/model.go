package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// CueSink receives the cues raised each frame. *audio.Player satisfies it.
type CueSink interface {
	PlayAll(cues []arena.Cue)
}

// RunStore persists finished runs. *storage.Store satisfies it.
type RunStore interface {
	SaveRun(run storage.RunRecord) (storage.RunRecord, error)
	HighScore(mode string) (float64, error)
}

// Options are the optional collaborators of a Model.
type Options struct {
	Store  RunStore    // nil disables the leaderboard
	Sound  CueSink     // nil is silent
	Logger *log.Logger // nil discards
	Mode   string      // difficulty name stored with each run
	Source string      // "local" or "ssh"
}

// Model is the Bubble Tea model that drives one arena simulation.
type Model struct {
	sim    *arena.Simulation
	view   *View
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options
	keys   *KeyMapper
	hold   *HoldTracker

	runID      string
	lastFrame  time.Time
	best       float64
	scoreSaved bool
	quitting   bool
}

// NewModel creates a model around an existing simulation.
func NewModel(sim *arena.Simulation, cfg core.RuntimeConfig, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Source == "" {
		opts.Source = "local"
	}

	m := &Model{
		sim:    sim,
		view:   NewView(sim.Seed()),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(),
		hold:   NewHoldTracker(),
	}
	m.loadBest()
	return m
}

func (m *Model) loadBest() {
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore(m.opts.Mode)
	if err != nil {
		m.opts.Logger.Warn("could not load high score", "error", err)
		return
	}
	m.best = best
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	// Esc on the title screen leaves the program.
	if isQuit || (msg.String() == "esc" && m.sim.State() == arena.StateMenu) {
		m.quitting = true
		return m, tea.Quit
	}

	m.hold.Press(action, time.Now())
	return m, nil
}

func (m *Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastFrame, now)
	m.lastFrame = now

	res := m.sim.Frame(m.hold.Frame(now), dt)
	m.apply(res)

	return m, frameCmd(m.config.FrameRate)
}

// apply reacts to a frame's transitions and cues.
func (m *Model) apply(res arena.FrameResult) {
	for _, tr := range res.Transitions {
		switch {
		case tr.To == arena.StatePlaying && tr.From != arena.StatePause:
			m.runID = uuid.New().String()
			m.scoreSaved = false
			m.opts.Logger.Debug("run started", "run", m.runID, "mode", m.opts.Mode)
		case tr.To == arena.StateLose:
			m.saveRun()
		case tr.To == arena.StateMenu:
			m.hold.Reset()
		}
	}

	if m.opts.Sound != nil && len(res.Cues) > 0 {
		m.opts.Sound.PlayAll(res.Cues)
	}
}

// saveRun records the finished run once.
func (m *Model) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	snap := m.sim.Snapshot()
	if snap.Score > m.best {
		m.best = snap.Score
	}
	if m.opts.Store == nil {
		return
	}

	run, err := m.opts.Store.SaveRun(storage.RunRecord{
		RunID:  m.runID,
		Mode:   m.opts.Mode,
		Source: m.opts.Source,
		Score:  snap.Score,
		Ticks:  snap.TicksSurvived,
		Kills:  snap.Kills,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "run", run.RunID, "score", run.Score, "mode", run.Mode)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".arena", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("arena_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m *Model) render() {
	m.view.Draw(m.screen, m.sim.Snapshot(), m.sim.World(), m.best)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Best returns the best score known to this model.
func (m *Model) Best() float64 {
	return m.best
}

// RunID returns the identifier of the current or last run.
func (m *Model) RunID() string {
	return m.runID
}

// Run starts the Bubble Tea program with the given simulation.
func Run(sim *arena.Simulation, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(sim, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
