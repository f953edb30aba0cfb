// Package window runs a simulation in a desktop window with Ebiten.
// Window resizes feed the simulation's coordinate space directly.
package window

import (
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/registry"
	"github.com/vovakirdan/rainshield/internal/storage"
)

var background = color.RGBA{A: 255}

// heldKeys maps held keyboard keys to directional intents.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// triggerKeys maps freshly pressed keys to one-shot actions.
var triggerKeys = map[ebiten.Key]core.Action{
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeySpace:  core.ActionPause,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyF3:     core.ActionDebug,
	ebiten.KeyEscape: core.ActionQuit,
	ebiten.KeyQ:      core.ActionQuit,
}

// Window implements ebiten.Game around a registry.Game.
type Window struct {
	game      registry.Game
	store     *storage.Store
	config    core.RuntimeConfig
	clock     *core.FixedStep
	pending   core.InputFrame
	frames    core.RateCounter
	steps     core.RateCounter
	lastFrame time.Time
	width     int
	height    int
	state     core.GameState
	runID     string
	stepCount int
	saved     bool
}

// New creates a window frontend for game. cfg.ScreenW and cfg.ScreenH
// set the initial window size.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	w := &Window{
		game:    game,
		store:   store,
		config:  cfg,
		clock:   core.NewFixedStep(cfg.TickRate, core.DefaultMaxFrameTime),
		pending: core.NewInputFrame(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	w.start()
	return w
}

func (w *Window) start() {
	w.game.Reset(w.config)
	w.game.Resize(w.width, w.height)
	w.state = w.game.State()
	w.runID = uuid.NewString()
	w.stepCount = 0
	w.saved = false
	w.clock.Reset()
	w.pending.Clear()
	log.Debug("run started", "game", w.game.ID(), "run", w.runID, "seed", w.config.Seed)
}

// Update implements ebiten.Game. It runs every fixed step due since the
// previous call.
func (w *Window) Update() error {
	now := time.Now()
	var elapsed time.Duration
	if !w.lastFrame.IsZero() {
		elapsed = now.Sub(w.lastFrame)
	}
	w.lastFrame = now

	if w.advance(elapsed, pressedTriggers(), heldIntent()) {
		w.saveScore()
		return ebiten.Termination
	}
	return nil
}

// pressedTriggers returns the one-shot actions whose keys went down this update.
func pressedTriggers() core.InputFrame {
	pressed := core.NewInputFrame()
	for k, a := range triggerKeys {
		if inpututil.IsKeyJustPressed(k) {
			pressed.Set(a)
		}
	}
	return pressed
}

// heldIntent returns the directions whose keys are down.
func heldIntent() core.InputFrame {
	held := core.NewInputFrame()
	for a, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				held.Set(a)
			}
		}
	}
	return held
}

// advance feeds elapsed time to the step clock and runs the due steps.
// Triggers wait in pending until a step consumes them, so a press on an
// update that runs no step is not lost. It returns true on quit.
func (w *Window) advance(elapsed time.Duration, pressed, held core.InputFrame) bool {
	if pressed.Has(core.ActionQuit) {
		return true
	}
	for a, on := range pressed.Actions {
		if on {
			w.pending.Set(a)
		}
	}
	if w.pending.Has(core.ActionRestart) && w.state.GameOver {
		w.config.Seed = time.Now().UnixNano()
		w.start()
		return false
	}

	n := w.clock.Advance(elapsed)
	for i := range n {
		in := held.Clone()
		if i == 0 {
			for a, on := range w.pending.Actions {
				if on {
					in.Set(a)
				}
			}
		}

		wasOver := w.state.GameOver
		result := w.game.Step(in)
		w.state = result.State
		if !wasOver && !result.State.Paused {
			w.stepCount++
		}
	}
	if n > 0 {
		w.pending.Clear()
	}
	if w.state.GameOver {
		w.saveScore()
	}

	if elapsed > 0 {
		w.frames.Tick(elapsed)
		w.steps.Add(n, elapsed)
		if fs, ok := w.game.(registry.FrameStats); ok {
			fs.SetFrameStats(w.frames.Rate(), w.steps.Rate())
		}
	}
	return false
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.game.Render(canvas{dst: screen})
}

// Layout implements ebiten.Game. The logical screen follows the window so
// the coordinate space sees every resize.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(outsideWidth, outsideHeight)
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// saveScore records the run once. Runs that scored nothing are not kept.
func (w *Window) saveScore() {
	if w.saved || w.state.Score == 0 {
		return
	}
	w.saved = true
	if w.store == nil {
		return
	}
	_, err := w.store.SaveRun(storage.ScoreEntry{
		RunID:  w.runID,
		GameID: w.game.ID(),
		Score:  w.state.Score,
		Seed:   w.config.Seed,
		Steps:  w.stepCount,
	})
	if err != nil {
		log.Warn("could not save score", "run", w.runID, "err", err)
	}
}

// Run opens a resizable window and blocks until it is closed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	w := New(game, store, cfg)

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.FPS > 0 {
		ebiten.SetTPS(cfg.FPS)
	}

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	w.saveScore()
	return err
}
