package components

// Body holds the physical and cosmetic properties of a cell.
// Radius is always positive; absorbed cells are removed rather than shrunk to zero.
type Body struct {
	Radius float64
	Color  string // Cosmetic only, never read by the simulation
}

// Area returns the squared radius, the quantity absorption conserves (sub-additively).
func (b Body) Area() float64 {
	return b.Radius * b.Radius
}
