// Package game owns an arena session: the cell store, the per-tick systems,
// score and high score, and the drivers that advance it over time.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pthm-cable/arena/config"
	"github.com/pthm-cable/arena/highscore"
	"github.com/pthm-cable/arena/systems"
	"github.com/pthm-cable/arena/telemetry"
)

// Intent is the directional input sampled at tick time.
type Intent = systems.Intent

// State is the session phase.
type State uint8

const (
	StateMenu State = iota // Constructed, never started
	StatePlaying
	StateStopped  // Halted by Stop before the player's mass was lost
	StateGameOver // Halted because no player cells remain
)

// String returns the display name for a State.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateStopped:
		return "stopped"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameOver is delivered to listeners when the player's last cell is absorbed.
type GameOver struct {
	FinalScore   int
	NewHighScore bool
}

// Options configures a new Game.
type Options struct {
	Config     *config.Config
	Seed       int64
	HighScores highscore.Store           // nil keeps the high score in memory
	Output     *telemetry.OutputManager // nil disables CSV and snapshot output
	LogStats   bool                     // Log window and perf stats through slog
}

// Game is one arena session. All methods must be called from the goroutine
// that drives Step; hosts feed input through SetIntent and RequestSplit
// between ticks and read state back through Snapshot.
type Game struct {
	cfg  *config.Config
	seed int64
	rng  *rand.Rand

	store    *systems.Store
	mover    *systems.Mover
	ai       *systems.AISystem
	splitter *systems.SplittingSystem
	resolver *systems.CollisionResolver
	spawner  *systems.FoodSpawner

	state State
	now   time.Duration // Session clock, advanced only by Step
	tick  uint64

	score      int
	highScore  int
	scores     highscore.Store
	lastCamera [2]float64

	intent       Intent
	pendingSplit bool

	onGameOver []func(GameOver)
	events     []telemetry.Event // Emitted during the last tick

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool
}

// New creates a session in the menu state and reads the stored high score.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(""); err != nil {
			return nil, err
		}
	}

	scores := opts.HighScores
	if scores == nil {
		scores = highscore.NewMemoryStore(0)
	}
	best, err := scores.Load()
	if err != nil {
		return nil, fmt.Errorf("loading high score: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		seed:      opts.Seed,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		store:     systems.NewStore(),
		highScore: best,
		scores:    scores,
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    opts.Output,
		logStats:  opts.LogStats,
	}
	g.buildSystems()
	return g, nil
}

// buildSystems creates the per-tick systems sharing the session RNG.
func (g *Game) buildSystems() {
	g.mover = systems.NewMover(g.cfg, g.rng)
	g.ai = systems.NewAISystem(g.cfg, g.rng)
	g.splitter = systems.NewSplittingSystem(g.cfg)
	g.resolver = systems.NewCollisionResolver(g.cfg)
	g.spawner = systems.NewFoodSpawner(g.cfg, g.rng)
}

// SetIntent replaces the directional input used by subsequent ticks.
func (g *Game) SetIntent(in Intent) {
	g.intent = in
}

// Intent returns the current directional input.
func (g *Game) Intent() Intent {
	return g.intent
}

// RequestSplit queues one split, consumed by the next tick.
// Repeated requests before that tick collapse into one.
func (g *Game) RequestSplit() {
	if g.state == StatePlaying {
		g.pendingSplit = true
	}
}

// OnGameOver registers a listener for the terminal game-over event.
func (g *Game) OnGameOver(fn func(GameOver)) {
	g.onGameOver = append(g.onGameOver, fn)
}

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score known to this session.
func (g *Game) HighScore() int { return g.highScore }

// State returns the session phase.
func (g *Game) State() State { return g.state }

// Tick returns the number of ticks run since Start.
func (g *Game) Tick() uint64 { return g.tick }

// Now returns the session clock.
func (g *Game) Now() time.Duration { return g.now }

// Seed returns the RNG seed the session was created with.
func (g *Game) Seed() int64 { return g.seed }

// Config returns the session configuration.
func (g *Game) Config() *config.Config { return g.cfg }

// Events returns the events emitted during the last tick.
// The slice is reused by the next Step.
func (g *Game) Events() []telemetry.Event { return g.events }

// PerfStats returns timing statistics over the recent ticks.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perf.Stats() }

// RecordFrame marks a presented frame for FPS tracking.
func (g *Game) RecordFrame() { g.perf.RecordFrame() }

// CellCount returns the number of live cells.
func (g *Game) CellCount() int { return g.store.Len() }
