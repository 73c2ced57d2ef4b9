// Package systems provides the per-tick systems of the arena simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arena/components"
)

// Neighbor holds a nearby entity with precomputed spatial data.
type Neighbor struct {
	E      ecs.Entity
	DX, DY float64 // Delta from query origin to the neighbor
	DistSq float64 // Squared distance (avoid sqrt in hot path)
}

// SpatialGrid provides bucketed neighbor lookups over the square that bounds
// the world disk. Positions outside the square clamp to the edge buckets.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	originX  float64 // World coordinate of the grid's left edge
	originY  float64 // World coordinate of the grid's top edge
	cells    [][]ecs.Entity
}

// NewSpatialGrid creates a spatial grid covering a world disk of the given radius.
func NewSpatialGrid(worldRadius, cellSize float64) *SpatialGrid {
	size := worldRadius * 2
	cols := int(size/cellSize) + 1
	rows := cols

	cells := make([][]ecs.Entity, cols*rows)
	for i := range cells {
		cells[i] = make([]ecs.Entity, 0, 8) // pre-allocate small capacity
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		originX:  -worldRadius,
		originY:  -worldRadius,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity to the grid at the given position.
func (g *SpatialGrid) Insert(e ecs.Entity, x, y float64) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], e)
}

// Rebuild clears the grid and inserts every live cell of the store.
func (g *SpatialGrid) Rebuild(store *Store) {
	g.Clear()
	posMap := store.PosMap()
	for _, e := range store.Entities() {
		pos := posMap.Get(e)
		g.Insert(e, pos.X, pos.Y)
	}
}

// QueryRadiusInto finds entities strictly closer than radius and appends them to dst.
// Reuse dst across calls to avoid allocations.
// One extra ring of buckets is scanned so entities that moved since the last
// Rebuild are still found; distances use current positions.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, x, y, radius float64, exclude ecs.Entity, posMap *ecs.Map[components.Position]) []Neighbor {
	reach := radius + g.cellSize
	minCol, minRow := g.colRow(x-reach, y-reach)
	maxCol, maxRow := g.colRow(x+reach, y+reach)
	radiusSq := radius * radius

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, e := range g.cells[row*g.cols+col] {
				if e == exclude {
					continue
				}

				pos := posMap.Get(e)
				if pos == nil {
					continue
				}

				dx := pos.X - x
				dy := pos.Y - y
				distSq := dx*dx + dy*dy

				if distSq < radiusSq {
					dst = append(dst, Neighbor{E: e, DX: dx, DY: dy, DistSq: distSq})
				}
			}
		}
	}

	return dst
}

// colRow returns the clamped bucket coordinates for a world position.
func (g *SpatialGrid) colRow(x, y float64) (int, int) {
	col := int((x - g.originX) / g.cellSize)
	row := int((y - g.originY) / g.cellSize)

	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// cellIndex returns the flat index for a world position.
func (g *SpatialGrid) cellIndex(x, y float64) int {
	col, row := g.colRow(x, y)
	return row*g.cols + col
}
