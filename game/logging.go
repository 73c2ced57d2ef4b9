package game

import (
	"log/slog"
	"time"
)

// logGameOver reports the end of a run.
func (g *Game) logGameOver(over GameOver) {
	slog.Info("game over",
		"tick", g.tick,
		"sim_time", g.now.Round(time.Millisecond).String(),
		"score", over.FinalScore,
		"high_score", g.highScore,
		"cells", g.store.Len(),
	)
	if over.NewHighScore {
		slog.Info("new high score", "score", over.FinalScore)
	}
}

// LogPerf logs timing statistics for the recent ticks.
func (g *Game) LogPerf() {
	stats := g.perf.Stats()
	slog.Info("perf", "tick", g.tick, "stats", stats)
}
