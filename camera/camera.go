// Package camera provides a 2D camera that follows the player's mass.
package camera

import "math"

// Camera controls the viewport into the arena.
// World coordinates have their origin at the arena center.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	// RefRadius is the player radius shown at BaseZoom
	RefRadius float32
	BaseZoom  float32

	// Smoothing is the fraction of the remaining distance covered per Follow call.
	// 1 snaps to the target.
	Smoothing float32
}

// New creates a camera centered on the origin with 1:1 zoom.
func New(viewportW, viewportH, refRadius float32) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0.25,
		MaxZoom:   2.0,
		RefRadius: refRadius,
		BaseZoom:  1.0,
		Smoothing: 0.15,
	}
}

// Follow moves the camera toward (x, y) and eases the zoom toward the level
// for a player of the given radius. A non-positive radius leaves zoom alone.
func (c *Camera) Follow(x, y, radius float32) {
	c.X += (x - c.X) * c.Smoothing
	c.Y += (y - c.Y) * c.Smoothing
	if radius > 0 {
		c.Zoom += (c.ZoomFor(radius) - c.Zoom) * c.Smoothing
	}
}

// Snap jumps straight to the target without smoothing.
func (c *Camera) Snap(x, y, radius float32) {
	c.X, c.Y = x, y
	if radius > 0 {
		c.Zoom = c.ZoomFor(radius)
	}
}

// ZoomFor returns the target zoom for a player of the given radius.
// Zoom falls with the square root of radius so large cells keep room to see.
func (c *Camera) ZoomFor(radius float32) float32 {
	if radius <= 0 || c.RefRadius <= 0 {
		return c.Zoom
	}
	z := c.BaseZoom * float32(math.Sqrt(float64(c.RefRadius/radius)))
	return clamp(z, c.MinZoom, c.MaxZoom)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// Reset returns the camera to the origin at the base zoom.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.Zoom = c.BaseZoom
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// GridLines returns the world coordinates of grid lines with the given
// spacing that fall inside the visible area, on each axis.
func (c *Camera) GridLines(spacing float32) (xs, ys []float32) {
	if spacing <= 0 {
		return nil, nil
	}
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	for x := float32(math.Ceil(float64(minX/spacing))) * spacing; x <= maxX; x += spacing {
		xs = append(xs, x)
	}
	for y := float32(math.Ceil(float64(minY/spacing))) * spacing; y <= maxY; y += spacing {
		ys = append(ys, y)
	}
	return xs, ys
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
