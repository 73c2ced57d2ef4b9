package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arena/components"
)

func TestStoreIDsAndOrder(t *testing.T) {
	store := NewStore()

	var ents []ecs.Entity
	for i := 0; i < 5; i++ {
		ents = append(ents, spawnAt(store, components.KindDrifter, float64(i), 0, 10, 0))
	}
	store.Remove(map[ecs.Entity]struct{}{ents[1]: {}, ents[3]: {}})
	spawnAt(store, components.KindFood, 0, 0, 5, 0)

	var ids []uint64
	for _, e := range store.Entities() {
		ids = append(ids, store.Get(e).ID.ID)
	}
	want := []uint64{0, 2, 4, 5}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
	if store.Alive(ents[1]) {
		t.Error("removed entity still alive")
	}
	if store.NextID() != 6 {
		t.Errorf("next id = %d, want 6", store.NextID())
	}
}

func TestStoreBrainOnlyForAI(t *testing.T) {
	store := NewStore()
	ai := spawnAt(store, components.KindAI, 0, 0, 20, 0)
	player := spawnAt(store, components.KindPlayer, 0, 0, 20, 0)

	if store.Get(ai).Brain == nil {
		t.Error("AI cell has no brain")
	}
	if store.Get(player).Brain != nil {
		t.Error("player cell has a brain")
	}
}

func TestStoreCounts(t *testing.T) {
	store := NewStore()
	spawnAt(store, components.KindPlayer, 0, 0, 30, 0)
	spawnAt(store, components.KindAI, 0, 0, 20, 0)
	spawnAt(store, components.KindAI, 0, 0, 25, 0)
	spawnAt(store, components.KindFood, 0, 0, 5, 0)

	counts := store.CountByKind()
	if counts[components.KindPlayer] != 1 || counts[components.KindAI] != 2 || counts[components.KindFood] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if got := len(store.Radii(components.KindAI)); got != 2 {
		t.Errorf("AI radii = %d, want 2", got)
	}
	if got := len(store.Players()); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
}

func TestDiskContain(t *testing.T) {
	disk := Disk{Radius: 100}

	pos := components.Position{X: 95, Y: 0}
	vel := components.Velocity{X: 4, Y: 2}
	if !disk.Contain(&pos, &vel, 10, 0.5) {
		t.Fatal("expected boundary contact")
	}
	if math.Abs(pos.X-90) > 1e-12 || pos.Y != 0 {
		t.Errorf("clamped position = %+v, want (90, 0)", pos)
	}
	// Outward normal component reflected with restitution, tangent kept
	if math.Abs(vel.X+2) > 1e-12 || vel.Y != 2 {
		t.Errorf("velocity = %+v, want (-2, 2)", vel)
	}

	inside := components.Position{X: 10, Y: 10}
	still := components.Velocity{X: 1}
	if disk.Contain(&inside, &still, 10, 0.5) {
		t.Error("interior cell reported as touching")
	}
}

func TestDiskContainMovingInward(t *testing.T) {
	disk := Disk{Radius: 100}
	pos := components.Position{X: 0, Y: -95}
	vel := components.Velocity{X: 0, Y: 3}

	disk.Contain(&pos, &vel, 10, 0.4)
	if vel.Y != 3 {
		t.Errorf("inward velocity changed to %v", vel.Y)
	}
	if math.Abs(pos.Y+90) > 1e-12 {
		t.Errorf("position = %+v, want (0, -90)", pos)
	}
}

func TestDiskSampleInside(t *testing.T) {
	disk := Disk{Radius: 1500}
	rng := testRNG()
	for i := 0; i < 1000; i++ {
		p := disk.Sample(rng)
		if math.Hypot(p.X, p.Y) > disk.Radius {
			t.Fatalf("sample %+v outside disk", p)
		}
	}
}

func TestSpatialGridQuery(t *testing.T) {
	store := NewStore()
	center := spawnAt(store, components.KindAI, 0, 0, 10, 0)
	near := spawnAt(store, components.KindFood, 150, 0, 5, 0)
	spawnAt(store, components.KindFood, 400, 0, 5, 0) // exactly at radius, excluded
	spawnAt(store, components.KindFood, -1000, 0, 5, 0)

	grid := NewSpatialGrid(1500, 100)
	grid.Rebuild(store)

	got := grid.QueryRadiusInto(nil, 0, 0, 400, center, store.PosMap())
	if len(got) != 1 || got[0].E != near {
		t.Fatalf("neighbors = %+v, want only the near cell", got)
	}
	if got[0].DistSq != 150*150 {
		t.Errorf("dist sq = %v, want %v", got[0].DistSq, 150*150)
	}
}
