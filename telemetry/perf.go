package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies one stage of the simulation tick.
type Phase uint8

// Phases in tick order.
const (
	PhaseDecay Phase = iota
	PhaseSplit
	PhasePlayer
	PhaseAI
	PhaseDrift
	PhaseCollision
	PhaseSpawn
	PhaseTelemetry
	NumPhases
)

var phaseNames = [NumPhases]string{
	"decay", "split", "player", "ai", "drift", "collision", "spawn", "telemetry",
}

// String returns the phase name used in logs and CSV headers.
func (p Phase) String() string {
	if p < NumPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       [NumPhases]time.Duration
}

// PerfCollector tracks tick timing over a rolling window of samples.
type PerfCollector struct {
	now func() time.Time

	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	current    PerfSample
	inTick     bool
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	// Frame timing (for graphics mode)
	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of ticks to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		now:        time.Now,
		windowSize: windowSize,
		samples:    make([]PerfSample, windowSize),
	}
}

// SetClock replaces the wall clock used for measurements.
func (p *PerfCollector) SetClock(now func() time.Time) {
	p.now = now
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.current = PerfSample{}
	p.inTick = true
	p.inPhase = false
}

// StartPhase ends the running phase, if any, and begins timing the next one.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
	p.inPhase = phase < NumPhases
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.current.Phases[p.phase] += now.Sub(p.phaseStart)
		p.inPhase = false
	}
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	if !p.inTick {
		return
	}
	now := p.now()
	p.closePhase(now)
	p.current.TickDuration = now.Sub(p.tickStart)
	p.inTick = false

	p.samples[p.writeIndex] = p.current
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	Samples int

	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg [NumPhases]time.Duration
	PhasePct [NumPhases]float64 // Share of average tick time

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		Samples:       p.sampleCount,
		FrameDuration: p.frameDuration,
	}
	if p.frameDuration > 0 {
		stats.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.sampleCount == 0 {
		return stats
	}

	var total time.Duration
	var phaseSum [NumPhases]time.Duration
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s.TickDuration
		if i == 0 || s.TickDuration < stats.MinTickDuration {
			stats.MinTickDuration = s.TickDuration
		}
		if s.TickDuration > stats.MaxTickDuration {
			stats.MaxTickDuration = s.TickDuration
		}
		for ph, d := range s.Phases {
			phaseSum[ph] += d
		}
	}

	n := time.Duration(p.sampleCount)
	stats.AvgTickDuration = total / n
	for ph := range phaseSum {
		stats.PhaseAvg[ph] = phaseSum[ph] / n
		if stats.AvgTickDuration > 0 {
			stats.PhasePct[ph] = float64(stats.PhaseAvg[ph]) / float64(stats.AvgTickDuration) * 100
		}
	}
	if stats.AvgTickDuration > 0 {
		stats.TicksPerSecond = float64(time.Second) / float64(stats.AvgTickDuration)
	}
	return stats
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
// Phases under 0.1% of the tick are omitted.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for ph := Phase(0); ph < NumPhases; ph++ {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Tick         uint64  `csv:"tick"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	DecayPct     float64 `csv:"decay_pct"`
	SplitPct     float64 `csv:"split_pct"`
	PlayerPct    float64 `csv:"player_pct"`
	AIPct        float64 `csv:"ai_pct"`
	DriftPct     float64 `csv:"drift_pct"`
	CollisionPct float64 `csv:"collision_pct"`
	SpawnPct     float64 `csv:"spawn_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(tick uint64) PerfStatsCSV {
	return PerfStatsCSV{
		Tick:         tick,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		DecayPct:     s.PhasePct[PhaseDecay],
		SplitPct:     s.PhasePct[PhaseSplit],
		PlayerPct:    s.PhasePct[PhasePlayer],
		AIPct:        s.PhasePct[PhaseAI],
		DriftPct:     s.PhasePct[PhaseDrift],
		CollisionPct: s.PhasePct[PhaseCollision],
		SpawnPct:     s.PhasePct[PhaseSpawn],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
