package game

import (
	"log/slog"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/systems"
	"github.com/pthm-cable/arena/telemetry"
)

// Start resets score, cells, ID counter and clock, seeds a new population
// and begins ticking. The high score and its listeners are kept.
func (g *Game) Start() {
	g.store = systems.NewStore()
	g.buildSystems()
	g.collector = telemetry.NewCollector(g.cfg.Telemetry.StatsWindow)

	g.now = 0
	g.tick = 0
	g.score = 0
	g.intent = Intent{}
	g.pendingSplit = false
	g.events = g.events[:0]
	g.lastCamera = [2]float64{}

	g.spawnInitialPopulation()
	g.state = StatePlaying

	slog.Info("session started",
		"seed", g.seed,
		"cells", g.store.Len(),
		"high_score", g.highScore,
	)
}

// Stop halts ticking without clearing state. A stopped session is not a
// game over: no listeners fire and the high score is not written.
func (g *Game) Stop() {
	if g.state != StatePlaying {
		return
	}
	g.state = StateStopped
	slog.Info("session stopped", "tick", g.tick, "score", g.score)
}

// spawnInitialPopulation places the player at the origin and seeds the
// configured number of AI and drifter cells inside the world.
func (g *Game) spawnInitialPopulation() {
	cfg := g.cfg
	disk := g.mover.Disk()

	g.store.Spawn(systems.CellSpec{
		Kind:   components.KindPlayer,
		Radius: cfg.Player.StartRadius,
		Color:  cfg.Player.Color,
	})

	sc := &cfg.Seeding
	for i := 0; i < cfg.World.InitialCells; i++ {
		radius := sc.MinRadius + g.rng.Float64()*sc.RadiusRange

		kind := components.KindDrifter
		if radius > cfg.AI.SizeThreshold {
			kind = components.KindAI
		}

		e := g.store.Spawn(systems.CellSpec{
			Kind: kind,
			Pos:  disk.Sample(g.rng),
			Vel: components.Velocity{
				X: (g.rng.Float64() - 0.5) * sc.VelocityRange,
				Y: (g.rng.Float64() - 0.5) * sc.VelocityRange,
			},
			Radius:     radius,
			Color:      systems.RandomColor(g.rng, cfg.Palette),
			SplitCount: int(g.rng.Float64() * float64(sc.MaxSplitCount)),
		})
		g.mover.Contain(g.store.Get(e))
	}
}

// endGame moves to the terminal state, persists a new high score and
// notifies listeners.
func (g *Game) endGame() {
	g.state = StateGameOver

	over := GameOver{FinalScore: g.score}
	if g.score > g.highScore {
		over.NewHighScore = true
		g.highScore = g.score
		if err := g.scores.Save(g.score); err != nil {
			slog.Error("failed to save high score", "score", g.score, "error", err)
		}
	}

	g.events = append(g.events, telemetry.NewGameOverEvent(g.tick, g.score))
	g.logGameOver(over)
	g.writeFinalOutput()

	for _, fn := range g.onGameOver {
		fn(over)
	}
}
