package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// spawnAt creates a stationary cell with the given kind, position, radius and split count.
func spawnAt(store *Store, kind components.Kind, x, y, radius float64, count int) ecs.Entity {
	return store.Spawn(CellSpec{
		Kind:       kind,
		Pos:        components.Position{X: x, Y: y},
		Radius:     radius,
		Color:      "#ffffff",
		SplitCount: count,
	})
}
