package systems

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/arena/components"
)

func TestDominanceOver(t *testing.T) {
	d := Dominance{Ratio: 1.15, Margin: 1}

	tests := []struct {
		name   string
		aR     float64
		aN     int
		bR     float64
		bN     int
		expect bool
	}{
		{"larger with equal counts", 30, 0, 10, 0, true},
		{"equal radius", 20, 0, 20, 0, false},
		{"just below ratio", 22.9, 0, 20, 0, false},
		{"just above ratio", 23.01, 0, 20, 0, true},
		{"larger but behind on splits", 30, 0, 10, 1, false},
		{"larger and ahead on splits", 30, 3, 10, 1, true},
		{"smaller but far ahead on splits", 10, 5, 30, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Over(tc.aR, tc.aN, tc.bR, tc.bN)
			if got != tc.expect {
				t.Errorf("Over(%v,%d,%v,%d) = %v, want %v", tc.aR, tc.aN, tc.bR, tc.bN, got, tc.expect)
			}
		})
	}
}

func TestResolvePlayerAbsorbsSmallerCell(t *testing.T) {
	cfg := testConfig(t)
	store := NewStore()
	mover := NewMover(cfg, testRNG())
	resolver := NewCollisionResolver(cfg)

	player := spawnAt(store, components.KindPlayer, 0, 0, 30, 0)
	spawnAt(store, components.KindDrifter, 10, 0, 10, 0)

	result := resolver.Resolve(store, mover, 0)

	if store.Len() != 1 {
		t.Fatalf("cells after resolve = %d, want 1", store.Len())
	}
	got := store.Get(player).Body.Radius
	if want := math.Sqrt(980); math.Abs(got-want) > 1e-9 {
		t.Errorf("player radius = %v, want %v", got, want)
	}
	if result.Score != 20 {
		t.Errorf("score = %d, want 20", result.Score)
	}
	if len(result.Absorptions) != 1 || result.Absorptions[0].AbsorbedKind != components.KindDrifter {
		t.Errorf("absorptions = %+v, want one drifter", result.Absorptions)
	}
}

func TestResolveEqualCellsSurvive(t *testing.T) {
	cfg := testConfig(t)
	store := NewStore()
	mover := NewMover(cfg, testRNG())
	resolver := NewCollisionResolver(cfg)

	a := spawnAt(store, components.KindAI, 0, 0, 20, 0)
	b := spawnAt(store, components.KindAI, 5, 0, 20, 0)

	result := resolver.Resolve(store, mover, 0)

	if store.Len() != 2 {
		t.Fatalf("cells after resolve = %d, want 2", store.Len())
	}
	if len(result.Absorptions) != 0 {
		t.Errorf("expected no absorptions, got %+v", result.Absorptions)
	}
	if store.Get(a).Body.Radius != 20 || store.Get(b).Body.Radius != 20 {
		t.Error("equal cells changed radius")
	}
}

func TestResolveLaterCellAbsorbsEarlier(t *testing.T) {
	cfg := testConfig(t)
	store := NewStore()
	mover := NewMover(cfg, testRNG())
	resolver := NewCollisionResolver(cfg)

	spawnAt(store, components.KindDrifter, 0, 0, 10, 0)
	big := spawnAt(store, components.KindAI, 5, 0, 40, 2)
	// Cell 0 could eat this one, but its inner loop stops once it is absorbed
	spawnAt(store, components.KindFood, 8, 0, 5, 0)

	result := resolver.Resolve(store, mover, 0)

	if store.Len() != 1 {
		t.Fatalf("cells after resolve = %d, want 1", store.Len())
	}
	if !store.Alive(big) {
		t.Fatal("absorber should survive")
	}
	if len(result.Absorptions) != 2 {
		t.Fatalf("absorptions = %d, want 2", len(result.Absorptions))
	}
	if result.Absorptions[0].Absorbed != 0 || result.Absorptions[1].Absorbed != 2 {
		t.Errorf("absorption order = %+v", result.Absorptions)
	}
	if result.Score != 0 {
		t.Errorf("AI absorptions scored %d", result.Score)
	}
	// Count merge takes max(2, floor((2+0)/2))
	if n := store.Get(big).Split.Count; n != 2 {
		t.Errorf("split count = %d, want 2", n)
	}
}

func TestResolveMutualExclusivity(t *testing.T) {
	cfg := testConfig(t)
	rng := testRNG()
	store := NewStore()
	mover := NewMover(cfg, rng)
	resolver := NewCollisionResolver(cfg)

	for i := 0; i < 60; i++ {
		spawnAt(store, components.KindDrifter, rng.Float64()*200-100, rng.Float64()*200-100, 5+rng.Float64()*25, rng.Intn(3))
	}

	result := resolver.Resolve(store, mover, 0)

	pairs := make(map[[2]uint64]bool)
	absorbed := make(map[uint64]bool)
	for _, ab := range result.Absorptions {
		if pairs[[2]uint64{ab.Absorbed, ab.Absorber}] {
			t.Errorf("cells %d and %d absorbed each other", ab.Absorber, ab.Absorbed)
		}
		pairs[[2]uint64{ab.Absorber, ab.Absorbed}] = true
		if absorbed[ab.Absorbed] {
			t.Errorf("cell %d absorbed twice", ab.Absorbed)
		}
		absorbed[ab.Absorbed] = true
	}
	if store.Len() != 60-len(result.Absorptions) {
		t.Errorf("live cells = %d, want %d", store.Len(), 60-len(result.Absorptions))
	}
	for _, e := range store.Entities() {
		if r := store.Get(e).Body.Radius; r <= 0 {
			t.Errorf("non-positive radius %v", r)
		}
	}
}

func TestResolveCoincidentCellsCollide(t *testing.T) {
	cfg := testConfig(t)
	store := NewStore()
	mover := NewMover(cfg, testRNG())
	resolver := NewCollisionResolver(cfg)

	spawnAt(store, components.KindAI, 100, 100, 30, 0)
	spawnAt(store, components.KindFood, 100, 100, 6, 0)

	resolver.Resolve(store, mover, 0)

	if store.Len() != 1 {
		t.Errorf("cells after resolve = %d, want 1", store.Len())
	}
}

func TestResolveSiblingMergeGrace(t *testing.T) {
	cfg := testConfig(t)
	store := NewStore()
	mover := NewMover(cfg, testRNG())
	resolver := NewCollisionResolver(cfg)

	mergeAt := 5 * time.Second
	parent := store.Spawn(CellSpec{Kind: components.KindPlayer, Radius: 30, MergeAt: mergeAt})
	store.Spawn(CellSpec{Kind: components.KindPlayer, Pos: components.Position{X: 5}, Radius: 10, MergeAt: mergeAt})

	result := resolver.Resolve(store, mover, time.Second)
	if store.Len() != 2 || len(result.Absorptions) != 0 {
		t.Fatalf("siblings merged during grace period")
	}

	result = resolver.Resolve(store, mover, mergeAt)
	if store.Len() != 1 {
		t.Fatalf("siblings did not merge after grace period")
	}
	if !store.Alive(parent) {
		t.Error("larger sibling should survive")
	}
	if result.Score != 20 {
		t.Errorf("score = %d, want 20", result.Score)
	}
}

func TestResolvePlayerMergeScores(t *testing.T) {
	tests := []struct {
		name      string
		small     float64
		wantScore int
	}{
		{"fragment r10", 10, 20},
		{"fragment r12.7", 12.7, 25},
		{"fragment r5", 5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			store := NewStore()
			mover := NewMover(cfg, testRNG())
			resolver := NewCollisionResolver(cfg)

			mergeAt := 5 * time.Second
			big := store.Spawn(CellSpec{Kind: components.KindPlayer, Radius: 30, MergeAt: mergeAt})
			store.Spawn(CellSpec{Kind: components.KindPlayer, Pos: components.Position{X: 5}, Radius: tt.small, MergeAt: mergeAt})

			result := resolver.Resolve(store, mover, 10*time.Second)
			if store.Len() != 1 || len(result.Absorptions) != 1 {
				t.Fatalf("cells = %d, absorptions = %d, want 1 and 1", store.Len(), len(result.Absorptions))
			}
			if result.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", result.Score, tt.wantScore)
			}
			want := math.Sqrt(30*30 + cfg.Collision.AbsorbEfficiency*tt.small*tt.small)
			if got := store.Get(big).Body.Radius; math.Abs(got-want) > 1e-9 {
				t.Errorf("radius = %v, want %v", got, want)
			}
		})
	}
}

func TestResolveRecontainsGrownCell(t *testing.T) {
	cfg := testConfig(t)
	store := NewStore()
	mover := NewMover(cfg, testRNG())
	resolver := NewCollisionResolver(cfg)

	R := cfg.Derived.WorldRadius
	ai := spawnAt(store, components.KindAI, R-40, 0, 40, 0)
	spawnAt(store, components.KindFood, R-45, 0, 14, 0)

	resolver.Resolve(store, mover, 0)

	c := store.Get(ai)
	if !mover.Disk().Contains(*c.Pos, c.Body.Radius, 1e-9) {
		t.Errorf("grown cell at %v radius %v escapes the world", *c.Pos, c.Body.Radius)
	}
}
