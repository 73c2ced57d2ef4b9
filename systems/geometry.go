package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/arena/components"
)

// Disk is the circular world boundary centered on the origin.
type Disk struct {
	Radius float64
}

// vec converts a position to a gonum vector.
func vec(p components.Position) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b components.Position) float64 {
	return r2.Norm(r2.Sub(vec(b), vec(a)))
}

// Direction returns the unit vector from a toward b and the distance between them.
// Coincident points have no direction: the unit vector is zero.
func Direction(a, b components.Position) (r2.Vec, float64) {
	d := r2.Sub(vec(b), vec(a))
	dist := r2.Norm(d)
	if dist == 0 {
		return r2.Vec{}, 0
	}
	return r2.Scale(1/dist, d), dist
}

// Contains reports whether a circle of the given radius lies inside the disk.
func (d Disk) Contains(pos components.Position, radius, eps float64) bool {
	return r2.Norm(vec(pos))+radius <= d.Radius+eps
}

// Contain pulls a cell that crosses the boundary back onto the circle of
// radius R - r along its angular direction, and reflects the outward normal
// component of its velocity scaled by restitution.
// Returns true if the cell was touching or crossing the boundary.
func (d Disk) Contain(pos *components.Position, vel *components.Velocity, radius, restitution float64) bool {
	p := vec(*pos)
	dist := r2.Norm(p)
	if dist+radius <= d.Radius {
		return false
	}
	// A cell wider than the world sitting exactly on the origin has no direction to clamp along
	if dist == 0 {
		return false
	}

	n := r2.Scale(1/dist, p)
	limit := math.Max(0, d.Radius-radius)
	pos.X = n.X * limit
	pos.Y = n.Y * limit

	v := r2.Vec{X: vel.X, Y: vel.Y}
	vn := r2.Dot(v, n)
	if vn > 0 {
		v = r2.Sub(v, r2.Scale((1+restitution)*vn, n))
		vel.X = v.X
		vel.Y = v.Y
	}
	return true
}

// Sample returns an area-uniform random point inside the disk.
func (d Disk) Sample(rng *rand.Rand) components.Position {
	rho := math.Sqrt(rng.Float64()) * d.Radius
	theta := rng.Float64() * 2 * math.Pi
	return components.Position{X: rho * math.Cos(theta), Y: rho * math.Sin(theta)}
}
