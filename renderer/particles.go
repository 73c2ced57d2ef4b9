package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/camera"
	"github.com/pthm-cable/arena/telemetry"
)

// Pop is a short expanding ring marking an absorption or split.
type Pop struct {
	X, Y    float32
	Radius  float32
	Life    int32
	MaxLife int32
	Type    telemetry.EventType
}

// ParticleRenderer tracks and draws event effects in world space.
type ParticleRenderer struct {
	pops []Pop
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Emit adds an effect at a world position.
func (r *ParticleRenderer) Emit(x, y, radius float32, typ telemetry.EventType) {
	r.pops = append(r.pops, Pop{X: x, Y: y, Radius: radius, Life: 20, MaxLife: 20, Type: typ})
}

// Update ages effects by one frame and drops expired ones.
func (r *ParticleRenderer) Update() {
	kept := r.pops[:0]
	for _, p := range r.pops {
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	r.pops = kept
}

// Len returns the number of live effects.
func (r *ParticleRenderer) Len() int {
	return len(r.pops)
}

// Clear removes all effects.
func (r *ParticleRenderer) Clear() {
	r.pops = r.pops[:0]
}

// Draw renders all effects.
func (r *ParticleRenderer) Draw(cam *camera.Camera) {
	for i := range r.pops {
		p := &r.pops[i]
		lifeRatio := float32(p.Life) / float32(p.MaxLife)

		var color rl.Color
		switch p.Type {
		case telemetry.EventSplit:
			// Orange
			color = rl.Color{R: 255, G: 150, B: 50, A: uint8(lifeRatio * 200)}
		default:
			// Grey
			color = rl.Color{R: 100, G: 100, B: 100, A: uint8(lifeRatio * 150)}
		}

		if !cam.IsVisible(p.X, p.Y, p.Radius*2) {
			continue
		}
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		inner := p.Radius * (2 - lifeRatio) * cam.Zoom
		rl.DrawRing(rl.Vector2{X: sx, Y: sy}, inner, inner+2, 0, 360, 48, color)
	}
}
