package game

import (
	"slices"
	"time"

	"github.com/pthm-cable/arena/components"
)

// CellView is the read-only rendering view of one cell.
type CellView struct {
	ID         uint64
	Kind       components.Kind
	X, Y       float64
	Radius     float64
	Color      string
	IsPlayer   bool
	SplitCount int
}

// Snapshot is the state a host needs to draw one frame.
type Snapshot struct {
	Cells       []CellView // Ascending radius, ties by ID
	CameraX     float64
	CameraY     float64
	WorldRadius float64
	Score       int
	HighScore   int
	Tick        uint64
	Time        time.Duration
	State       State
}

// Snapshot captures the current state. Small cells come first so hosts
// drawing in order put larger cells on top. The camera centers on the
// largest player cell and holds its last position once none remain.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Cells:       make([]CellView, 0, g.store.Len()),
		WorldRadius: g.cfg.Derived.WorldRadius,
		Score:       g.score,
		HighScore:   g.highScore,
		Tick:        g.tick,
		Time:        g.now,
		State:       g.state,
	}

	var largest float64
	found := false
	for _, e := range g.store.Entities() {
		c := g.store.Get(e)
		s.Cells = append(s.Cells, CellView{
			ID:         c.ID.ID,
			Kind:       c.ID.Kind,
			X:          c.Pos.X,
			Y:          c.Pos.Y,
			Radius:     c.Body.Radius,
			Color:      c.Body.Color,
			IsPlayer:   c.ID.Kind.IsPlayer(),
			SplitCount: c.Split.Count,
		})
		// Entities are in ID order, so strict > keeps the lower ID on ties
		if c.ID.Kind.IsPlayer() && (!found || c.Body.Radius > largest) {
			found = true
			largest = c.Body.Radius
			g.lastCamera = [2]float64{c.Pos.X, c.Pos.Y}
		}
	}
	s.CameraX, s.CameraY = g.lastCamera[0], g.lastCamera[1]

	slices.SortStableFunc(s.Cells, func(a, b CellView) int {
		switch {
		case a.Radius < b.Radius:
			return -1
		case a.Radius > b.Radius:
			return 1
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return s
}

// Largest returns the view of the largest player cell, if any.
func (s *Snapshot) Largest() (CellView, bool) {
	var best CellView
	found := false
	for _, c := range s.Cells {
		if c.IsPlayer && (!found || c.Radius > best.Radius || (c.Radius == best.Radius && c.ID < best.ID)) {
			best = c
			found = true
		}
	}
	return best, found
}

// PlayerMass returns the summed radii of the player's cells.
func (s *Snapshot) PlayerMass() float64 {
	var total float64
	for _, c := range s.Cells {
		if c.IsPlayer {
			total += c.Radius
		}
	}
	return total
}
