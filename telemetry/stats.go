package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of session time.
type WindowStats struct {
	WindowStartTick uint64  `csv:"-"`
	WindowEndTick   uint64  `csv:"tick"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Players  int `csv:"players"`
	AI       int `csv:"ai"`
	Drifters int `csv:"drifters"`
	Food     int `csv:"food"`

	// Events during window
	PlayerAbsorptions int `csv:"player_absorptions"`
	AIAbsorptions     int `csv:"ai_absorptions"`
	PlayerCellsLost   int `csv:"player_cells_lost"`
	AICellsLost       int `csv:"ai_cells_lost"`
	Splits            int `csv:"splits"`
	Spawns            int `csv:"spawns"`

	// AI decisions by branch
	DecisionsFlee   int `csv:"decisions_flee"`
	DecisionsChase  int `csv:"decisions_chase"`
	DecisionsForage int `csv:"decisions_forage"`
	DecisionsWander int `csv:"decisions_wander"`
	DecisionsIdle   int `csv:"decisions_idle"`

	Score       int `csv:"score"`
	ScoreGained int `csv:"score_gained"`

	PlayerMass    float64 `csv:"player_mass"` // Sum of squared radii
	PlayerLargest float64 `csv:"player_largest"`

	// Radius distribution (sampled at window end)
	AIRadiusMean      float64 `csv:"ai_radius_mean"`
	AIRadiusStd       float64 `csv:"ai_radius_std"`
	AIRadiusP50       float64 `csv:"ai_radius_p50"`
	AIRadiusP90       float64 `csv:"ai_radius_p90"`
	PassiveRadiusMean float64 `csv:"passive_radius_mean"`
}

// ComputeRadiusStats returns the mean, sample standard deviation, and the
// empirical 50th and 90th percentiles of a set of radii. Empty input yields zeros.
func ComputeRadiusStats(values []float64) (mean, std, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}
	if n == 1 {
		return values[0], 0, values[0], values[0]
	}

	mean, std = stat.MeanStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("tick", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("players", s.Players),
		slog.Int("ai", s.AI),
		slog.Int("drifters", s.Drifters),
		slog.Int("food", s.Food),
		slog.Int("player_absorptions", s.PlayerAbsorptions),
		slog.Int("ai_absorptions", s.AIAbsorptions),
		slog.Int("player_cells_lost", s.PlayerCellsLost),
		slog.Int("splits", s.Splits),
		slog.Int("spawns", s.Spawns),
		slog.Int("decisions_flee", s.DecisionsFlee),
		slog.Int("decisions_chase", s.DecisionsChase),
		slog.Int("score", s.Score),
		slog.Float64("player_largest", s.PlayerLargest),
		slog.Float64("ai_radius_mean", s.AIRadiusMean),
		slog.Float64("ai_radius_p90", s.AIRadiusP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
