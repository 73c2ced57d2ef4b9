package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1700000000, 0)} }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPerfCollector_BasicTiming(t *testing.T) {
	clock := newFakeClock()
	pc := NewPerfCollector(10)
	pc.SetClock(clock.now)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseAI)
		clock.advance(100 * time.Microsecond)
		pc.StartPhase(PhaseCollision)
		clock.advance(300 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.Samples != 5 {
		t.Errorf("samples = %d, want 5", stats.Samples)
	}
	if stats.AvgTickDuration != 400*time.Microsecond {
		t.Errorf("avg tick = %v, want 400µs", stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseAI] != 100*time.Microsecond {
		t.Errorf("ai avg = %v, want 100µs", stats.PhaseAvg[PhaseAI])
	}
	if stats.PhasePct[PhaseCollision] != 75 {
		t.Errorf("collision pct = %v, want 75", stats.PhasePct[PhaseCollision])
	}
	if stats.TicksPerSecond != 2500 {
		t.Errorf("ticks/sec = %v, want 2500", stats.TicksPerSecond)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	clock := newFakeClock()
	pc := NewPerfCollector(5)
	pc.SetClock(clock.now)

	// Five slow ticks followed by five fast ones; only the fast ones remain
	for i := 0; i < 10; i++ {
		d := time.Millisecond
		if i >= 5 {
			d = 100 * time.Microsecond
		}
		pc.StartTick()
		pc.StartPhase(PhaseSpawn)
		clock.advance(d)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.Samples != 5 {
		t.Errorf("samples = %d, want 5", stats.Samples)
	}
	if stats.MaxTickDuration != 100*time.Microsecond {
		t.Errorf("max tick = %v, want 100µs", stats.MaxTickDuration)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("expected zero stats for empty collector, got %+v", stats)
	}
}

func TestPerfCollector_EndTickWithoutStart(t *testing.T) {
	pc := NewPerfCollector(10)
	pc.EndTick()
	if pc.Stats().Samples != 0 {
		t.Error("EndTick without StartTick recorded a sample")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	clock := newFakeClock()
	pc := NewPerfCollector(10)
	pc.SetClock(clock.now)

	pc.RecordFrame()
	clock.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("frame duration = %v, want 20ms", stats.FrameDuration)
	}
	if stats.FPS != 50 {
		t.Errorf("fps = %v, want 50", stats.FPS)
	}
}

func TestPhaseNames(t *testing.T) {
	csv := PerfStats{PhasePct: [NumPhases]float64{PhaseAI: 42}}.ToCSV(7)
	if csv.AIPct != 42 || csv.Tick != 7 {
		t.Errorf("ToCSV = %+v", csv)
	}
	if PhaseCollision.String() != "collision" || NumPhases.String() != "unknown" {
		t.Errorf("unexpected phase names %q %q", PhaseCollision, NumPhases)
	}
}
