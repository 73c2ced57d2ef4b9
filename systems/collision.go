package systems

import (
	"math"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
)

// Dominance decides whether one cell may absorb another.
type Dominance struct {
	Ratio  float64 // Radius must exceed the other's by this factor
	Margin int     // Split count lead that also qualifies
}

// NewDominance builds the rule from config.
func NewDominance(cfg *config.Config) Dominance {
	return Dominance{Ratio: cfg.Collision.DominanceRatio, Margin: cfg.Collision.SplitMargin}
}

// Over reports whether a cell of radius aR and split count aN dominates one
// of radius bR and split count bN. Size is required; a split count that is
// tied or in the first cell's favor is enough to qualify.
func (d Dominance) Over(aR float64, aN int, bR float64, bN int) bool {
	if aR <= bR*d.Ratio {
		return false
	}
	return aN > bN+d.Margin || aN >= bN
}

// Cells reports whether cell a dominates cell b.
func (d Dominance) Cells(a, b Cell) bool {
	return d.Over(a.Body.Radius, a.Split.Count, b.Body.Radius, b.Split.Count)
}

// Absorption records one cell absorbing another.
type Absorption struct {
	Absorber       uint64
	AbsorberKind   components.Kind
	Absorbed       uint64
	AbsorbedKind   components.Kind
	AbsorbedRadius float64
	Score          int // Points awarded to the player
}

// CollisionResult summarizes one resolver pass.
type CollisionResult struct {
	Absorptions []Absorption
	Score       int
}

// CollisionResolver performs the pairwise absorption pass.
type CollisionResolver struct {
	cfg *config.Config
	dom Dominance

	// Reused across ticks
	dead map[ecs.Entity]struct{}
	grew map[ecs.Entity]struct{}
}

// NewCollisionResolver creates a resolver.
func NewCollisionResolver(cfg *config.Config) *CollisionResolver {
	return &CollisionResolver{
		cfg:  cfg,
		dom:  NewDominance(cfg),
		dead: make(map[ecs.Entity]struct{}),
		grew: make(map[ecs.Entity]struct{}),
	}
}

// Resolve visits every unordered pair once in ascending ID order. A cell
// marked for removal takes no further part in the pass; when the outer cell
// is absorbed its inner loop stops. Removals are applied after the pass and
// cells that grew are pulled back inside the boundary.
func (r *CollisionResolver) Resolve(store *Store, mover *Mover, now time.Duration) CollisionResult {
	clear(r.dead)
	clear(r.grew)

	var result CollisionResult
	ents := store.Entities()

	for i, ea := range ents {
		if _, ok := r.dead[ea]; ok {
			continue
		}
		a := store.Get(ea)

		for _, eb := range ents[i+1:] {
			if _, ok := r.dead[eb]; ok {
				continue
			}
			b := store.Get(eb)

			if r.siblingsInGrace(a, b, now) {
				continue
			}
			if !r.touching(a, b) {
				continue
			}

			if r.dom.Cells(a, b) {
				result.add(r.absorb(a, b))
			} else if r.dom.Cells(b, a) {
				result.add(r.absorb(b, a))
				break
			}
		}
	}

	for e := range r.grew {
		if _, ok := r.dead[e]; ok {
			continue
		}
		mover.Contain(store.Get(e))
	}
	store.Remove(r.dead)

	return result
}

// touching reports whether two cells overlap enough to interact.
// Coincident cells always touch.
func (r *CollisionResolver) touching(a, b Cell) bool {
	dist := Distance(*a.Pos, *b.Pos)
	return dist < r.cfg.Collision.ContactFactor*(a.Body.Radius+b.Body.Radius)
}

// siblingsInGrace reports whether two player cells are still inside their post-split merge delay.
func (r *CollisionResolver) siblingsInGrace(a, b Cell, now time.Duration) bool {
	if !a.ID.Kind.IsPlayer() || !b.ID.Kind.IsPlayer() {
		return false
	}
	return now < max(a.Split.MergeAt, b.Split.MergeAt)
}

// absorb grows the winner by a fraction of the loser's area and marks the loser for removal.
func (r *CollisionResolver) absorb(winner, loser Cell) Absorption {
	col := &r.cfg.Collision
	wr, lr := winner.Body.Radius, loser.Body.Radius

	winner.Body.Radius = math.Sqrt(wr*wr + col.AbsorbEfficiency*lr*lr)
	winner.Split.Count = max(winner.Split.Count, (winner.Split.Count+loser.Split.Count)/2)

	r.dead[loser.E] = struct{}{}
	r.grew[winner.E] = struct{}{}

	ab := Absorption{
		Absorber:       winner.ID.ID,
		AbsorberKind:   winner.ID.Kind,
		Absorbed:       loser.ID.ID,
		AbsorbedKind:   loser.ID.Kind,
		AbsorbedRadius: lr,
	}
	if winner.ID.Kind.IsPlayer() {
		ab.Score = int(math.Floor(lr * col.ScorePerRadius))
	}
	return ab
}

func (res *CollisionResult) add(ab Absorption) {
	res.Absorptions = append(res.Absorptions, ab)
	res.Score += ab.Score
}
