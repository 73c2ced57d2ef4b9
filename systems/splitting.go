package systems

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
)

// SplitEvent records a player cell launching a fragment.
type SplitEvent struct {
	Parent   uint64
	Fragment uint64
}

// SplittingSystem handles the player split action and split count decay.
type SplittingSystem struct {
	cfg *config.Config

	pending []CellSpec // Fragments awaiting creation, reused across calls
	parents []uint64
}

// NewSplittingSystem creates a new splitting system.
func NewSplittingSystem(cfg *config.Config) *SplittingSystem {
	return &SplittingSystem{cfg: cfg}
}

// CanSplit reports whether a cell passes the split gate.
func (s *SplittingSystem) CanSplit(body components.Body, split components.Split) bool {
	return body.Radius > s.cfg.Split.MinRadius && split.Cooldown <= 0
}

// Apply performs one split attempt for every player cell. Cells that pass
// the gate shrink, recoil and launch a fragment along the split direction;
// cells that fail count their cooldown down by one.
func (s *SplittingSystem) Apply(store *Store, intent Intent, now time.Duration) []SplitEvent {
	sc := &s.cfg.Split
	mergeAt := now + s.cfg.Derived.MergeDelay
	s.pending = s.pending[:0]
	s.parents = s.parents[:0]

	for _, e := range store.Players() {
		c := store.Get(e)
		if !s.CanSplit(*c.Body, *c.Split) {
			if c.Split.Cooldown > 0 {
				c.Split.Cooldown--
			}
			continue
		}

		dir := splitDirection(intent, *c.Vel)
		count := c.Split.Count + 1

		s.pending = append(s.pending, CellSpec{
			Kind:       components.KindPlayer,
			Pos:        *c.Pos,
			Vel:        components.Velocity{X: dir.X * sc.FragmentSpeed, Y: dir.Y * sc.FragmentSpeed},
			Radius:     c.Body.Radius * sc.FragmentScale,
			Color:      c.Body.Color,
			SplitCount: count,
			Cooldown:   sc.Cooldown,
			MergeAt:    mergeAt,
			Now:        now,
		})
		s.parents = append(s.parents, c.ID.ID)

		c.Body.Radius *= sc.ParentScale
		c.Vel.X -= dir.X * sc.Recoil
		c.Vel.Y -= dir.Y * sc.Recoil
		c.Split.Cooldown = sc.Cooldown
		c.Split.Count = count
		c.Split.LastSplit = now
		c.Split.MergeAt = mergeAt
	}

	// Fragments are created after the pass so component pointers stay valid
	var events []SplitEvent
	for i, spec := range s.pending {
		e := store.Spawn(spec)
		events = append(events, SplitEvent{Parent: s.parents[i], Fragment: store.Get(e).ID.ID})
	}
	return events
}

// splitDirection picks the launch direction: raw input axes, else the
// current velocity, else +X.
func splitDirection(intent Intent, vel components.Velocity) r2.Vec {
	dx, dy := intent.Axes()
	d := r2.Vec{X: dx, Y: dy}
	if dx == 0 && dy == 0 {
		d = r2.Vec{X: vel.X, Y: vel.Y}
	}
	n := r2.Norm(d)
	if n == 0 {
		return r2.Vec{X: 1}
	}
	return r2.Scale(1/n, d)
}

// Decay lowers every cell's split count by one step per full decay window
// elapsed beyond the first window since its last split.
func (s *SplittingSystem) Decay(store *Store, now time.Duration) {
	for _, e := range store.Entities() {
		c := store.Get(e)
		DecaySplit(c.Split, now, s.cfg.Derived.SplitDecay)
	}
}

// DecaySplit applies count decay to one cell. LastSplit only advances when
// at least one step was taken.
func DecaySplit(split *components.Split, now, window time.Duration) {
	if split.Count <= 0 || window <= 0 {
		return
	}
	elapsed := now - split.LastSplit
	if elapsed <= window {
		return
	}
	steps := int((elapsed - window) / window)
	if steps <= 0 {
		return
	}
	split.Count = max(0, split.Count-steps)
	split.LastSplit = now
}
