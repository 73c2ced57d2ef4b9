package systems

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
)

// sighting is a visible cell with its distance from the observer.
type sighting struct {
	cell Cell
	dist float64
}

// nearer reports whether s is closer than other, breaking ties by lower ID.
func (s sighting) nearer(other sighting) bool {
	if s.dist != other.dist {
		return s.dist < other.dist
	}
	return s.cell.ID.ID < other.cell.ID.ID
}

// Perception holds the nearest cell of each category seen on a decision tick.
type Perception struct {
	threat, prey, food sighting
	hasThreat          bool
	hasPrey            bool
	hasFood            bool
}

func (p *Perception) seeThreat(s sighting) {
	if !p.hasThreat || s.nearer(p.threat) {
		p.threat, p.hasThreat = s, true
	}
}

func (p *Perception) seePrey(s sighting) {
	if !p.hasPrey || s.nearer(p.prey) {
		p.prey, p.hasPrey = s, true
	}
}

func (p *Perception) seeFood(s sighting) {
	if !p.hasFood || s.nearer(p.food) {
		p.food, p.hasFood = s, true
	}
}

// AISystem runs perception and target selection for AI cells.
type AISystem struct {
	cfg  *config.Config
	rng  *rand.Rand
	dom  Dominance
	grid *SpatialGrid

	nearby []Neighbor // Reused query buffer
}

// NewAISystem creates the AI system with its own vision grid.
func NewAISystem(cfg *config.Config, rng *rand.Rand) *AISystem {
	return &AISystem{
		cfg:    cfg,
		rng:    rng,
		dom:    NewDominance(cfg),
		grid:   NewSpatialGrid(cfg.Derived.WorldRadius, cfg.World.GridCellSize),
		nearby: make([]Neighbor, 0, 64),
	}
}

// Update runs the decision step and then movement for every AI cell in
// ascending ID order. Returns the number of decisions taken per mode.
func (s *AISystem) Update(store *Store, mover *Mover, now time.Duration) [components.NumModes]int {
	var decisions [components.NumModes]int
	s.grid.Rebuild(store)

	for _, e := range store.Entities() {
		c := store.Get(e)
		if !c.ID.Kind.IsAI() {
			continue
		}
		if mode, ok := s.Decide(store, c, now); ok {
			decisions[mode]++
		}
		mover.Move(c, Intent{}, now)
	}
	return decisions
}

// Decide re-evaluates an AI cell's target if its decision interval has
// elapsed. Returns the chosen mode and whether a decision was taken.
// Within the interval the call is a no-op and the target is kept.
func (s *AISystem) Decide(store *Store, c Cell, now time.Duration) (components.Mode, bool) {
	brain := c.Brain
	if brain == nil {
		return components.ModeIdle, false
	}
	if now-brain.LastDecision < s.cfg.Derived.DecisionInterval {
		return brain.Mode, false
	}
	brain.LastDecision = now

	p := s.perceive(store, c)
	ai := &s.cfg.AI
	pos := vec(*c.Pos)

	switch {
	case p.hasThreat && p.threat.dist < ai.FleeDistance:
		away, _ := Direction(*p.threat.cell.Pos, *c.Pos)
		target := r2.Add(pos, r2.Scale(ai.FleeTargetDistance, away))
		s.setTarget(brain, target, components.ModeFlee)
	case p.hasPrey && p.prey.dist < ai.ChaseDistance:
		s.setTarget(brain, vec(*p.prey.cell.Pos), components.ModeChase)
	case p.hasFood:
		s.setTarget(brain, vec(*p.food.cell.Pos), components.ModeForage)
	case s.rng.Float64() < ai.WanderChance:
		offset := r2.Vec{
			X: (s.rng.Float64() - 0.5) * ai.WanderRange,
			Y: (s.rng.Float64() - 0.5) * ai.WanderRange,
		}
		s.setTarget(brain, r2.Add(pos, offset), components.ModeWander)
	default:
		brain.Mode = components.ModeIdle
	}
	return brain.Mode, true
}

// perceive classifies every other cell within vision range.
func (s *AISystem) perceive(store *Store, c Cell) Perception {
	var p Perception
	s.nearby = s.grid.QueryRadiusInto(s.nearby[:0], c.Pos.X, c.Pos.Y, s.cfg.AI.VisionRadius, c.E, store.PosMap())

	for _, n := range s.nearby {
		other := store.Get(n.E)
		seen := sighting{cell: other, dist: Distance(*c.Pos, *other.Pos)}

		switch {
		case s.dom.Cells(other, c):
			p.seeThreat(seen)
		case s.dom.Cells(c, other):
			p.seePrey(seen)
		case other.Body.Radius < s.cfg.AI.FoodMaxRadius && !other.ID.Kind.IsAI():
			p.seeFood(seen)
		}
	}
	return p
}

func (s *AISystem) setTarget(brain *components.Brain, target r2.Vec, mode components.Mode) {
	brain.TargetX = target.X
	brain.TargetY = target.Y
	brain.Mode = mode
}

// Grid exposes the vision grid, rebuilt at the start of every Update.
func (s *AISystem) Grid() *SpatialGrid {
	return s.grid
}
