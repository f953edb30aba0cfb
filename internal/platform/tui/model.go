package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/registry"
	"github.com/vovakirdan/rainshield/internal/storage"
)

// Model is the Bubble Tea model for running one simulation.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	clock      *core.FixedStep
	keyMapper  *KeyMapper
	held       heldKeys
	triggers   *core.InputFrame
	frames     *core.RateCounter
	steps      *core.RateCounter
	lastFrame  time.Time
	gameState  core.GameState
	runID      string
	stepCount  int
	allowBack  bool
	backToMenu bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are in pixels: one pixel per column and
// core.CellAspect pixels per row.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	triggers := core.NewInputFrame()

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH/core.CellAspect),
		store:     store,
		config:    cfg,
		clock:     core.NewFixedStep(cfg.TickRate, core.DefaultMaxFrameTime),
		keyMapper: NewKeyMapper(),
		held:      heldKeys{},
		triggers:  &triggers,
		frames:    &core.RateCounter{},
		steps:     &core.RateCounter{},
		runID:     uuid.NewString(),
	}
}

// Init starts the run and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	log.Debug("run started", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)
	return frameCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, nil
		}
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.saveScore()
		return m, tea.Quit
	case isHeld(action):
		m.held.press(action, now)
	case action != core.ActionNone:
		m.triggers.Set(action)
	}

	return m, nil
}

// handleResize keeps the run and only changes the drawing area.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height * core.CellAspect
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.screen.Size())
	return m, nil
}

// handleFrame runs every fixed step that is due since the previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	if m.triggers.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, frameCmd(m.config.FPS)
	}

	n := m.clock.Advance(elapsed)
	for i := range n {
		in := core.NewInputFrame()
		m.held.apply(&in, now)
		if i == 0 {
			for a, on := range m.triggers.Actions {
				if on {
					in.Set(a)
				}
			}
		}

		wasOver := m.gameState.GameOver
		result := m.game.Step(in)
		m.gameState = result.State
		if !wasOver && !result.State.Paused {
			m.stepCount++
		}
	}
	if n > 0 {
		m.triggers.Clear()
	}
	if m.gameState.GameOver {
		m.saveScore()
	}

	if elapsed > 0 {
		m.frames.Tick(elapsed)
		m.steps.Add(n, elapsed)
		if fs, ok := m.game.(registry.FrameStats); ok {
			fs.SetFrameStats(m.frames.Rate(), m.steps.Rate())
		}
	}

	return m, frameCmd(m.config.FPS)
}

// restart begins a new run with a fresh seed and run ID.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.game.Resize(m.screen.Size())
	m.gameState = m.game.State()
	m.runID = uuid.NewString()
	m.stepCount = 0
	m.scoreSaved = false
	m.clock.Reset()
	m.held.clear()
	m.triggers.Clear()
	log.Debug("run restarted", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)
}

// saveScore records the run once. Runs that scored nothing are not kept.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score == 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	_, err := m.store.SaveRun(storage.ScoreEntry{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
		Steps:  m.stepCount,
	})
	if err != nil {
		log.Warn("could not save score", "run", m.runID, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".rainshield", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// RunID returns the ID of the current run.
func (m Model) RunID() string {
	return m.runID
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
