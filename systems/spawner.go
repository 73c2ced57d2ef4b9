package systems

import (
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
)

// FoodSpawner tops up the arena with small passive cells.
type FoodSpawner struct {
	cfg *config.Config
	rng *rand.Rand
}

// NewFoodSpawner creates a food spawner.
func NewFoodSpawner(cfg *config.Config, rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{cfg: cfg, rng: rng}
}

// Update rolls the spawn chance once and, while the arena is below the cap,
// creates one food cell at a random point. Returns the new entity and true
// when a cell was spawned.
func (f *FoodSpawner) Update(store *Store, mover *Mover, now time.Duration) (ecs.Entity, bool) {
	if f.rng.Float64() >= f.cfg.Food.SpawnChance {
		return ecs.Entity{}, false
	}
	if store.Len() >= f.cfg.Derived.FoodCap {
		return ecs.Entity{}, false
	}

	fc := &f.cfg.Food
	e := store.Spawn(CellSpec{
		Kind:   components.KindFood,
		Pos:    mover.Disk().Sample(f.rng),
		Radius: fc.MinRadius + f.rng.Float64()*(fc.MaxRadius-fc.MinRadius),
		Color:  RandomColor(f.rng, f.cfg.Palette),
		Now:    now,
	})
	mover.Contain(store.Get(e))
	return e, true
}

// RandomColor picks a palette entry uniformly.
func RandomColor(rng *rand.Rand, palette []string) string {
	if len(palette) == 0 {
		return "#ffffff"
	}
	return palette[rng.Intn(len(palette))]
}
