package game

import (
	"log/slog"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/telemetry"
)

// flushTelemetry closes the stats window once enough session time has passed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.now) {
		return
	}

	stats := g.collector.Flush(g.now, g.tick, g.samplePopulation())
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// samplePopulation gathers counts and radii for the window record.
func (g *Game) samplePopulation() telemetry.Population {
	pop := telemetry.Population{
		Counts:      g.store.CountByKind(),
		PlayerRadii: g.store.Radii(components.KindPlayer),
		AIRadii:     g.store.Radii(components.KindAI),
		Score:       g.score,
	}
	pop.PassiveRadii = append(g.store.Radii(components.KindDrifter), g.store.Radii(components.KindFood)...)
	return pop
}

// createSnapshot captures the full arena state for post-mortem inspection.
func (g *Game) createSnapshot(reason string) *telemetry.Snapshot {
	snap := &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		RNGSeed:     g.seed,
		WorldRadius: g.cfg.Derived.WorldRadius,
		Tick:        g.tick,
		SimTimeMS:   g.now.Milliseconds(),
		Score:       g.score,
		Reason:      reason,
		Cells:       make([]telemetry.CellState, 0, g.store.Len()),
	}

	for _, e := range g.store.Entities() {
		c := g.store.Get(e)
		cs := telemetry.CellState{
			ID:            c.ID.ID,
			Kind:          c.ID.Kind,
			X:             c.Pos.X,
			Y:             c.Pos.Y,
			VelX:          c.Vel.X,
			VelY:          c.Vel.Y,
			Radius:        c.Body.Radius,
			Color:         c.Body.Color,
			SplitCount:    c.Split.Count,
			SplitCooldown: c.Split.Cooldown,
			LastSplitMS:   c.Split.LastSplit.Milliseconds(),
		}
		if c.Brain != nil {
			tx, ty := c.Brain.TargetX, c.Brain.TargetY
			cs.Mode = c.Brain.Mode.String()
			cs.TargetX = &tx
			cs.TargetY = &ty
		}
		snap.Cells = append(snap.Cells, cs)
	}
	return snap
}

// SaveSnapshot writes the current arena state into the output directory.
// It does nothing when output is disabled.
func (g *Game) SaveSnapshot(reason string) (string, error) {
	return g.output.WriteSnapshot(g.createSnapshot(reason))
}

// writeFinalOutput flushes the partial stats window and saves a game-over
// snapshot when output is enabled.
func (g *Game) writeFinalOutput() {
	if g.output == nil {
		return
	}
	stats := g.collector.Flush(g.now, g.tick, g.samplePopulation())
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	path, err := g.SaveSnapshot("game_over")
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	slog.Info("snapshot saved", "path", path, "tick", g.tick)
}
