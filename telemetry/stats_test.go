package telemetry

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/arena/components"
)

func TestComputeRadiusStats(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean, std, p50, p90 := ComputeRadiusStats(values)

	if math.Abs(mean-5) > 1e-9 {
		t.Errorf("mean = %v, want 5", mean)
	}
	if want := math.Sqrt(32.0 / 7.0); math.Abs(std-want) > 1e-9 {
		t.Errorf("std = %v, want %v", std, want)
	}
	if p50 != 4 {
		t.Errorf("p50 = %v, want 4", p50)
	}
	if p90 != 9 {
		t.Errorf("p90 = %v, want 9", p90)
	}
	// Input order is preserved
	if values[0] != 2 || values[7] != 9 {
		t.Error("ComputeRadiusStats modified its input")
	}
}

func TestComputeRadiusStatsSmall(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		mean   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{12}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, p50, p90 := ComputeRadiusStats(tt.values)
			if mean != tt.mean || std != 0 || p50 != tt.mean || p90 != tt.mean {
				t.Errorf("got (%v, %v, %v, %v)", mean, std, p50, p90)
			}
		})
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(9 * time.Second) {
		t.Error("flush requested before window elapsed")
	}
	if !c.ShouldFlush(10 * time.Second) {
		t.Error("flush not requested at window end")
	}

	c.RecordAbsorption(components.KindPlayer, components.KindFood, 12)
	c.RecordAbsorption(components.KindPlayer, components.KindDrifter, 20)
	c.RecordAbsorption(components.KindAI, components.KindPlayer, 0)
	c.RecordSplit()
	c.RecordSpawn()
	c.RecordSpawn()
	var decisions [components.NumModes]int
	decisions[components.ModeFlee] = 3
	decisions[components.ModeChase] = 1
	c.RecordDecisions(decisions)
	c.RecordDecisions(decisions)

	pop := Population{
		PlayerRadii: []float64{30, 40},
		AIRadii:     []float64{20},
		Score:       32,
	}
	pop.Counts[components.KindPlayer] = 2
	pop.Counts[components.KindAI] = 1

	stats := c.Flush(10*time.Second, 600, pop)

	if stats.PlayerAbsorptions != 2 || stats.AIAbsorptions != 1 || stats.PlayerCellsLost != 1 {
		t.Errorf("absorption counts = %+v", stats)
	}
	if stats.ScoreGained != 32 || stats.Score != 32 {
		t.Errorf("score = %d gained %d, want 32/32", stats.Score, stats.ScoreGained)
	}
	if stats.Splits != 1 || stats.Spawns != 2 {
		t.Errorf("splits %d spawns %d", stats.Splits, stats.Spawns)
	}
	if stats.DecisionsFlee != 6 || stats.DecisionsChase != 2 {
		t.Errorf("decisions flee %d chase %d", stats.DecisionsFlee, stats.DecisionsChase)
	}
	if stats.PlayerMass != 2500 || stats.PlayerLargest != 40 {
		t.Errorf("player mass %v largest %v", stats.PlayerMass, stats.PlayerLargest)
	}
	if stats.SimTimeSec != 10 || stats.WindowEndTick != 600 {
		t.Errorf("window end = %v s tick %d", stats.SimTimeSec, stats.WindowEndTick)
	}

	// Counters reset and the next window starts where this one ended
	next := c.Flush(20*time.Second, 1200, Population{})
	if next.PlayerAbsorptions != 0 || next.Splits != 0 || next.DecisionsFlee != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 600 {
		t.Errorf("window start tick = %d, want 600", next.WindowStartTick)
	}
	if c.ShouldFlush(25 * time.Second) {
		t.Error("flush requested mid-window")
	}
}
