package game

import (
	"time"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/telemetry"
)

// Step advances the session clock by dt and runs one tick to completion.
// It returns false once the session is no longer playing; calls made
// after that are no-ops.
func (g *Game) Step(dt time.Duration) bool {
	if g.state != StatePlaying {
		return false
	}
	if dt < 0 {
		dt = 0
	}

	g.now += dt
	g.tick++
	g.events = g.events[:0]

	g.perf.StartTick()
	g.runTick()
	g.perf.EndTick()

	if len(g.store.Players()) == 0 {
		g.endGame()
		return false
	}
	return true
}

// runTick applies the systems in their fixed order.
func (g *Game) runTick() {
	now := g.now

	g.perf.StartPhase(telemetry.PhaseDecay)
	g.splitter.Decay(g.store, now)

	g.perf.StartPhase(telemetry.PhaseSplit)
	if g.pendingSplit {
		g.pendingSplit = false
		g.applySplit(now)
	}

	g.perf.StartPhase(telemetry.PhasePlayer)
	g.mover.MoveKind(g.store, components.Kind.IsPlayer, g.intent, now)

	g.perf.StartPhase(telemetry.PhaseAI)
	decisions := g.ai.Update(g.store, g.mover, now)
	g.collector.RecordDecisions(decisions)

	g.perf.StartPhase(telemetry.PhaseDrift)
	g.mover.MoveKind(g.store, components.Kind.IsPassive, Intent{}, now)

	g.perf.StartPhase(telemetry.PhaseCollision)
	g.resolveCollisions(now)

	g.perf.StartPhase(telemetry.PhaseSpawn)
	if e, ok := g.spawner.Update(g.store, g.mover, now); ok {
		c := g.store.Get(e)
		g.collector.RecordSpawn()
		g.events = append(g.events, telemetry.NewSpawnEvent(g.tick, c.ID.ID, c.Body.Radius))
	}

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
}

func (g *Game) applySplit(now time.Duration) {
	for _, ev := range g.splitter.Apply(g.store, g.intent, now) {
		g.collector.RecordSplit()
		g.events = append(g.events, telemetry.NewSplitEvent(g.tick, ev.Parent, ev.Fragment))
	}
}

func (g *Game) resolveCollisions(now time.Duration) {
	res := g.resolver.Resolve(g.store, g.mover, now)
	g.score += res.Score

	for _, ab := range res.Absorptions {
		g.collector.RecordAbsorption(ab.AbsorberKind, ab.AbsorbedKind, ab.Score)
		g.events = append(g.events, telemetry.NewAbsorbEvent(
			g.tick, ab.Absorber, ab.AbsorberKind, ab.Absorbed, ab.AbsorbedKind, ab.AbsorbedRadius, ab.Score,
		))
	}
}
