package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
)

// Mover integrates cell motion: steering, drift, damping, position update
// and boundary containment.
type Mover struct {
	cfg   *config.Config
	rng   *rand.Rand
	disk  Disk
	table BehaviorTable
}

// NewMover creates a movement system.
func NewMover(cfg *config.Config, rng *rand.Rand) *Mover {
	return &Mover{
		cfg:   cfg,
		rng:   rng,
		disk:  Disk{Radius: cfg.Derived.WorldRadius},
		table: NewBehaviorTable(cfg),
	}
}

// Speed returns the current top-speed scale of a cell. Larger cells are slower;
// recent splits give a bonus that erodes with time since the last split.
func (m *Mover) Speed(body components.Body, split components.Split, now time.Duration) float64 {
	mv := &m.cfg.Movement
	base := math.Max(mv.MinBaseSpeed, mv.MaxBaseSpeed-body.Radius/mv.SizeDivisor)

	bonus := float64(split.Count) * mv.SplitBonus
	var slowdown float64
	if window := m.cfg.Derived.SlowdownWindow; window > 0 {
		slowdown = float64(now-split.LastSplit) / float64(window) * mv.SlowdownRate
	}

	mult := math.Max(mv.MinSpeedMultiplier, 1+bonus-slowdown)
	return base * mult
}

// Move advances one cell by one tick according to its kind's behavior.
func (m *Mover) Move(c Cell, intent Intent, now time.Duration) {
	b := m.table.For(c.ID.Kind)

	if b.Steer != nil {
		b.Steer(m, c, intent, now)
	}
	if b.Drift && m.rng.Float64() < m.cfg.Movement.DriftChance {
		impulse := m.cfg.Movement.DriftImpulse
		c.Vel.X += (m.rng.Float64() - 0.5) * impulse
		c.Vel.Y += (m.rng.Float64() - 0.5) * impulse
	}

	c.Vel.X *= b.Damping
	c.Vel.Y *= b.Damping

	c.Pos.X += c.Vel.X
	c.Pos.Y += c.Vel.Y

	m.disk.Contain(c.Pos, c.Vel, c.Body.Radius, b.Restitution)
}

// MoveKind moves every live cell whose kind satisfies match, in ascending ID order.
func (m *Mover) MoveKind(store *Store, match func(components.Kind) bool, intent Intent, now time.Duration) {
	for _, e := range store.Entities() {
		c := store.Get(e)
		if !match(c.ID.Kind) {
			continue
		}
		m.Move(c, intent, now)
	}
}

// Contain re-applies boundary containment to a cell, using its kind's restitution.
func (m *Mover) Contain(c Cell) bool {
	b := m.table.For(c.ID.Kind)
	return m.disk.Contain(c.Pos, c.Vel, c.Body.Radius, b.Restitution)
}

// Disk returns the world boundary.
func (m *Mover) Disk() Disk {
	return m.disk
}
