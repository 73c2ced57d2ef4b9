package telemetry

import (
	"time"

	"github.com/pthm-cable/arena/components"
)

// Population is the state of the arena sampled at window end.
type Population struct {
	Counts       [components.NumKinds]int
	PlayerRadii  []float64
	AIRadii      []float64
	PassiveRadii []float64 // Drifters and food
	Score        int
}

// Collector accumulates events within windows of session time and produces WindowStats.
type Collector struct {
	window time.Duration

	// Current window tracking
	windowStart     time.Duration
	windowStartTick uint64

	// Event counters for current window
	absorbedBy  [components.NumKinds]int // Keyed by absorber kind
	absorbed    [components.NumKinds]int // Keyed by absorbed kind
	splits      int
	spawns      int
	decisions   [components.NumModes]int
	scoreGained int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in session seconds.
func NewCollector(windowDurationSec float64) *Collector {
	window := time.Duration(windowDurationSec * float64(time.Second))
	if window <= 0 {
		window = 10 * time.Second
	}
	return &Collector{window: window}
}

// RecordAbsorption records one cell absorbing another and the score it earned.
func (c *Collector) RecordAbsorption(absorber, absorbed components.Kind, score int) {
	if absorber < components.NumKinds {
		c.absorbedBy[absorber]++
	}
	if absorbed < components.NumKinds {
		c.absorbed[absorbed]++
	}
	c.scoreGained += score
}

// RecordSplit records a player split.
func (c *Collector) RecordSplit() {
	c.splits++
}

// RecordSpawn records a food spawn.
func (c *Collector) RecordSpawn() {
	c.spawns++
}

// RecordDecisions adds one tick's AI decision counts.
func (c *Collector) RecordDecisions(byMode [components.NumModes]int) {
	for m, n := range byMode {
		c.decisions[m] += n
	}
}

// ShouldFlush returns true once a full window of session time has passed.
func (c *Collector) ShouldFlush(now time.Duration) bool {
	return now-c.windowStart >= c.window
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(now time.Duration, tick uint64, pop Population) WindowStats {
	aiMean, aiStd, aiP50, aiP90 := ComputeRadiusStats(pop.AIRadii)
	passiveMean, _, _, _ := ComputeRadiusStats(pop.PassiveRadii)

	var playerMass, largest float64
	for _, r := range pop.PlayerRadii {
		playerMass += r * r
		largest = max(largest, r)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      now.Seconds(),

		Players:  pop.Counts[components.KindPlayer],
		AI:       pop.Counts[components.KindAI],
		Drifters: pop.Counts[components.KindDrifter],
		Food:     pop.Counts[components.KindFood],

		PlayerAbsorptions: c.absorbedBy[components.KindPlayer],
		AIAbsorptions:     c.absorbedBy[components.KindAI],
		PlayerCellsLost:   c.absorbed[components.KindPlayer],
		AICellsLost:       c.absorbed[components.KindAI],
		Splits:            c.splits,
		Spawns:            c.spawns,

		DecisionsFlee:   c.decisions[components.ModeFlee],
		DecisionsChase:  c.decisions[components.ModeChase],
		DecisionsForage: c.decisions[components.ModeForage],
		DecisionsWander: c.decisions[components.ModeWander],
		DecisionsIdle:   c.decisions[components.ModeIdle],

		Score:       pop.Score,
		ScoreGained: c.scoreGained,

		PlayerMass:    playerMass,
		PlayerLargest: largest,

		AIRadiusMean:      aiMean,
		AIRadiusStd:       aiStd,
		AIRadiusP50:       aiP50,
		AIRadiusP90:       aiP90,
		PassiveRadiusMean: passiveMean,
	}

	// Reset for next window
	c.windowStart = now
	c.windowStartTick = tick
	c.absorbedBy = [components.NumKinds]int{}
	c.absorbed = [components.NumKinds]int{}
	c.splits = 0
	c.spawns = 0
	c.decisions = [components.NumModes]int{}
	c.scoreGained = 0

	return stats
}

// Window returns the window length.
func (c *Collector) Window() time.Duration {
	return c.window
}
