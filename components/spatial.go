package components

// Position represents a cell's world position. The origin is the world center.
type Position struct {
	X, Y float64
}

// Velocity represents a cell's velocity in world units per tick.
type Velocity struct {
	X, Y float64
}
