package systems

import (
	"time"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
)

// steerFunc applies a role's acceleration for one tick.
type steerFunc func(m *Mover, c Cell, intent Intent, now time.Duration)

// Behavior is the per-role movement rule set.
type Behavior struct {
	Damping     float64   // Velocity multiplier applied every tick
	Restitution float64   // Boundary bounce factor
	Steer       steerFunc // nil for passive cells
	Drift       bool      // Random-walk impulses
}

// BehaviorTable maps each Kind to its movement rules.
type BehaviorTable [components.NumKinds]Behavior

// NewBehaviorTable builds the role dispatch table from config.
func NewBehaviorTable(cfg *config.Config) BehaviorTable {
	var t BehaviorTable
	t[components.KindPlayer] = Behavior{
		Damping:     cfg.Player.Damping,
		Restitution: cfg.Player.Restitution,
		Steer:       steerIntent,
	}
	t[components.KindAI] = Behavior{
		Damping:     cfg.Movement.Damping,
		Restitution: cfg.Movement.Restitution,
		Steer:       steerTarget,
	}
	passive := Behavior{
		Damping:     cfg.Movement.Damping,
		Restitution: cfg.Movement.Restitution,
		Drift:       true,
	}
	t[components.KindDrifter] = passive
	t[components.KindFood] = passive
	return t
}

// For returns the behavior for a kind.
func (t *BehaviorTable) For(kind components.Kind) Behavior {
	if kind >= components.NumKinds {
		return Behavior{Damping: 1}
	}
	return t[kind]
}

// Intent is the directional input sampled at tick time.
// Axes are independent so opposite keys cancel and adjacent keys combine.
type Intent struct {
	Up, Down, Left, Right bool
}

// Axes returns the raw axis values in {-1, 0, 1}. Screen convention: up is -Y.
func (in Intent) Axes() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}

// Vector returns the axes with diagonals scaled so the magnitude stays near 1.
func (in Intent) Vector(diagonalScale float64) (dx, dy float64) {
	dx, dy = in.Axes()
	if dx != 0 && dy != 0 {
		dx *= diagonalScale
		dy *= diagonalScale
	}
	return dx, dy
}

// IsZero reports whether the intent produces no movement.
func (in Intent) IsZero() bool {
	dx, dy := in.Axes()
	return dx == 0 && dy == 0
}

// steerIntent accelerates a player cell along the input vector.
func steerIntent(m *Mover, c Cell, intent Intent, now time.Duration) {
	dx, dy := intent.Vector(m.cfg.Movement.DiagonalScale)
	if dx == 0 && dy == 0 {
		return
	}
	speed := m.Speed(*c.Body, *c.Split, now)
	c.Vel.X += dx * speed * m.cfg.Player.Accel
	c.Vel.Y += dy * speed * m.cfg.Player.Accel
}

// steerTarget accelerates an AI cell toward its stored target. Cells within
// the arrive distance get no push, which keeps them from jittering on the spot.
func steerTarget(m *Mover, c Cell, _ Intent, now time.Duration) {
	if c.Brain == nil {
		return
	}
	target := components.Position{X: c.Brain.TargetX, Y: c.Brain.TargetY}
	dir, dist := Direction(*c.Pos, target)
	if dist <= m.cfg.AI.ArriveDistance {
		return
	}
	speed := m.Speed(*c.Body, *c.Split, now)
	c.Vel.X += dir.X * speed * m.cfg.AI.Accel
	c.Vel.Y += dir.Y * speed * m.cfg.AI.Accel
}
