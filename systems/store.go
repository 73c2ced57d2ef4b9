package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arena/components"
)

// CellSpec describes a cell to create.
type CellSpec struct {
	Kind       components.Kind
	Pos        components.Position
	Vel        components.Velocity
	Radius     float64
	Color      string
	SplitCount int
	Cooldown   int
	MergeAt    time.Duration
	Now        time.Duration // Creation instant; anchors LastSplit and LastDecision
}

// Cell is a view over one live cell's components.
// Pointers stay valid until the next structural change (Spawn or Remove).
type Cell struct {
	E     ecs.Entity
	ID    *components.Identity
	Pos   *components.Position
	Vel   *components.Velocity
	Body  *components.Body
	Split *components.Split
	Brain *components.Brain // nil unless the cell is KindAI
}

// Store holds the live cells of one session in an ECS world, plus an index
// of entities in ascending ID order. Creation order equals ID order, so the
// index is kept sorted by appending on spawn and filtering on removal.
type Store struct {
	world *ecs.World

	cellMapper *ecs.Map5[
		components.Identity,
		components.Position,
		components.Velocity,
		components.Body,
		components.Split,
	]
	cellFilter *ecs.Filter2[components.Identity, components.Body]

	posMap   *ecs.Map[components.Position]
	brainMap *ecs.Map[components.Brain]

	order  []ecs.Entity
	nextID uint64
}

// NewStore creates an empty store whose first cell gets ID 0.
func NewStore() *Store {
	world := ecs.NewWorld()
	return &Store{
		world: world,
		cellMapper: ecs.NewMap5[
			components.Identity,
			components.Position,
			components.Velocity,
			components.Body,
			components.Split,
		](world),
		cellFilter: ecs.NewFilter2[components.Identity, components.Body](world),
		posMap:     ecs.NewMap[components.Position](world),
		brainMap:   ecs.NewMap[components.Brain](world),
	}
}

// Spawn creates a cell and returns its entity. AI cells get a Brain whose
// first decision is due one decision interval after creation, heading for the origin.
func (s *Store) Spawn(spec CellSpec) ecs.Entity {
	id := components.Identity{ID: s.nextID, Kind: spec.Kind}
	s.nextID++

	pos := spec.Pos
	vel := spec.Vel
	body := components.Body{Radius: spec.Radius, Color: spec.Color}
	split := components.Split{
		Count:     spec.SplitCount,
		Cooldown:  spec.Cooldown,
		LastSplit: spec.Now,
		MergeAt:   spec.MergeAt,
	}

	e := s.cellMapper.NewEntity(&id, &pos, &vel, &body, &split)
	if spec.Kind.IsAI() {
		s.brainMap.Add(e, &components.Brain{LastDecision: spec.Now})
	}

	s.order = append(s.order, e)
	return e
}

// Get returns the component view for a live cell.
func (s *Store) Get(e ecs.Entity) Cell {
	id, pos, vel, body, split := s.cellMapper.Get(e)
	c := Cell{E: e, ID: id, Pos: pos, Vel: vel, Body: body, Split: split}
	if s.brainMap.Has(e) {
		c.Brain = s.brainMap.Get(e)
	}
	return c
}

// Entities returns live cells in ascending ID order.
// The slice is owned by the store; callers must not modify or retain it across Remove.
func (s *Store) Entities() []ecs.Entity {
	return s.order
}

// Len returns the number of live cells.
func (s *Store) Len() int {
	return len(s.order)
}

// NextID returns the ID the next spawned cell will receive.
func (s *Store) NextID() uint64 {
	return s.nextID
}

// Alive reports whether the entity is still in the store.
func (s *Store) Alive(e ecs.Entity) bool {
	return s.world.Alive(e)
}

// PosMap exposes the position mapper for spatial queries.
func (s *Store) PosMap() *ecs.Map[components.Position] {
	return s.posMap
}

// Remove deletes the given cells. It must not be called while iterating Entities.
func (s *Store) Remove(dead map[ecs.Entity]struct{}) {
	if len(dead) == 0 {
		return
	}

	kept := s.order[:0]
	for _, e := range s.order {
		if _, ok := dead[e]; ok {
			s.world.RemoveEntity(e)
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed entities are not retained by the backing array
	for i := len(kept); i < len(s.order); i++ {
		s.order[i] = ecs.Entity{}
	}
	s.order = kept
}

// CountByKind returns the number of live cells of each kind.
func (s *Store) CountByKind() [components.NumKinds]int {
	var counts [components.NumKinds]int
	query := s.cellFilter.Query()
	for query.Next() {
		id, _ := query.Get()
		if id.Kind < components.NumKinds {
			counts[id.Kind]++
		}
	}
	return counts
}

// Radii returns the radius of every live cell of the given kind.
func (s *Store) Radii(kind components.Kind) []float64 {
	var radii []float64
	query := s.cellFilter.Query()
	for query.Next() {
		id, body := query.Get()
		if id.Kind == kind {
			radii = append(radii, body.Radius)
		}
	}
	return radii
}

// Players returns the live player cells in ascending ID order.
func (s *Store) Players() []ecs.Entity {
	var players []ecs.Entity
	for _, e := range s.order {
		id, _, _, _, _ := s.cellMapper.Get(e)
		if id.Kind.IsPlayer() {
			players = append(players, e)
		}
	}
	return players
}
