// Package rain implements the rain shield simulation: an umbrella steered
// by the player, one static shelter, and NPCs that react to falling rain.
// Rain absorbed by an NPC scores a point.
package rain

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainshield/internal/config"
	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
	"github.com/vovakirdan/rainshield/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// simContext is the per-run state shared by the systems.
type simContext struct {
	step      time.Duration
	rng       *RNG
	rainTimer time.Duration
	npcTimer  time.Duration
	steps     int
	elapsed   time.Duration
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading one on Reset.
func WithConfig(cfg config.RainConfig) Option {
	return func(g *Game) {
		g.fixed = &cfg
	}
}

// WithEventSink adds a receiver of absorption events.
func WithEventSink(s EventSink) Option {
	return func(g *Game) {
		g.sinks = append(g.sinks, s)
	}
}

// WithSprites replaces the built-in sprite catalog.
func WithSprites(s SpriteSource) Option {
	return func(g *Game) {
		g.sprites = s
	}
}

// Game implements the rain shield simulation.
type Game struct {
	id       string
	title    string
	reaction string // overrides npc.reaction when set

	fixed      *config.RainConfig
	cfg        config.RainConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	sprites    SpriteSource
	sinks      []EventSink
	space      core.CoordinateSpace

	world      *ecs.World
	positions  *ecs.Table[Position]
	velocities *ecs.Table[Velocity]
	gravity    *ecs.Table[Gravity]
	drops      *ecs.Table[Drop]
	players    *ecs.Table[Player]
	shelters   *ecs.Table[Shelter]
	npcs       *ecs.Table[Npc]
	looks      *ecs.Table[Sprite]
	transforms *ecs.Table[Transform]

	ctx      simContext
	score    ScoreCounter
	paused   bool
	gameOver bool
	debug    bool
	lastErr  error
	fps, tps int
}

// New creates a game using the configured NPC reaction (flee by default).
func New(opts ...Option) *Game {
	return newGame("rain", "Rain Shield", "", opts)
}

// NewChase creates the variant where NPCs run toward the rain.
func NewChase(opts ...Option) *Game {
	return newGame("rain_chase", "Rain Shield (Chase)", config.ReactionChase, opts)
}

func newGame(id, title, reaction string, opts []Option) *Game {
	g := &Game{
		id:       id,
		title:    title,
		reaction: reaction,
		sprites:  BuiltinSprites{},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.world = ecs.NewWorld()
	g.positions = ecs.NewTable[Position](g.world)
	g.velocities = ecs.NewTable[Velocity](g.world)
	g.gravity = ecs.NewTable[Gravity](g.world)
	g.drops = ecs.NewTable[Drop](g.world)
	g.players = ecs.NewTable[Player](g.world)
	g.shelters = ecs.NewTable[Shelter](g.world)
	g.npcs = ecs.NewTable[Npc](g.world)
	g.looks = ecs.NewTable[Sprite](g.world)
	g.transforms = ecs.NewTable[Transform](g.world)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	if g.reaction != "" {
		g.cfg.Npc.Reaction = g.reaction
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.space = core.NewCoordinateSpace(runtime.ScreenW, runtime.ScreenH)
	g.ctx = simContext{
		step: runtime.StepDuration(),
		rng:  NewRNG(runtime.Seed),
	}
	g.score.Reset()
	g.paused = false
	g.gameOver = false
	g.debug = runtime.Debug
	g.lastErr = nil

	g.world.Clear()
	g.spawnScene()
	for range g.cfg.Npc.InitialCount {
		g.spawnNpc()
	}
	g.world.Flush()
}

func (g *Game) loadConfig() config.RainConfig {
	if g.fixed != nil {
		return *g.fixed
	}
	cfg, err := config.LoadRain(configPath)
	if err != nil {
		log.Warn("rain: using default config", "err", err)
		cfg = config.DefaultRainConfig()
	}
	config.ApplyRainPreset(&cfg, difficultyPreset)
	return cfg
}

// Config returns the active configuration.
func (g *Game) Config() config.RainConfig {
	return g.cfg
}

// Resize updates the coordinate space for a new window size without
// restarting the run.
func (g *Game) Resize(w, h int) {
	g.space.Resize(w, h)
}

// SetFrameStats records the frontend's measured frame and step rates for
// the debug overlay.
func (g *Game) SetFrameStats(fps, tps int) {
	g.fps, g.tps = fps, tps
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := g.score.Total()
	if err := g.step(in); err != nil {
		if g.lastErr == nil || g.lastErr.Error() != err.Error() {
			log.Error("rain: step aborted", "err", err, "step", g.ctx.steps)
		}
		g.lastErr = err
	} else {
		g.lastErr = nil
	}

	return core.StepResult{State: g.State(), Events: g.score.Total() - before}
}

// step runs the systems in their required order. An invariant violation
// aborts the step before anything is integrated.
func (g *Game) step(in core.InputFrame) error {
	dt := g.ctx.step
	secs := dt.Seconds()

	if err := g.applyIntent(in); err != nil {
		return err
	}
	g.applyGravity(secs)
	g.updateNpcs(dt)
	if err := g.resolveCollisions(); err != nil {
		return err
	}
	g.integrate(secs)
	g.clampBodies()
	g.cleanupRain()
	g.tickSpawners(dt)
	g.world.Flush()

	g.ctx.steps++
	g.ctx.elapsed += dt
	if d := g.cfg.Round.Duration; d > 0 && g.ctx.elapsed >= d {
		g.gameOver = true
	}
	return nil
}

// Err returns the invariant violation that aborted the last step, if any.
func (g *Game) Err() error {
	return g.lastErr
}

// Remaining returns the time left in a timed round, or zero for endless runs.
func (g *Game) Remaining() time.Duration {
	if g.cfg.Round.Duration <= 0 {
		return 0
	}
	return max(g.cfg.Round.Duration-g.ctx.elapsed, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Total(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// IsInvariantError reports whether err came from a broken entity invariant.
func IsInvariantError(err error) bool {
	return errors.Is(err, ecs.ErrNoEntity) || errors.Is(err, ecs.ErrManyEntities)
}

// Register the games with the registry
func init() {
	registry.Register("rain", func() registry.Game {
		return New()
	})
	registry.Register("rain_chase", func() registry.Game {
		return NewChase()
	})
}
