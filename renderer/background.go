package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/camera"
)

// BackgroundRenderer draws the arena floor: a flat fill, a world-space grid
// and the circular boundary.
type BackgroundRenderer struct {
	Fill     rl.Color
	Outside  rl.Color
	Grid     rl.Color
	Border   rl.Color
	GridSize float32
}

// NewBackgroundRenderer creates a background renderer with the default palette.
func NewBackgroundRenderer(gridSize float32) *BackgroundRenderer {
	return &BackgroundRenderer{
		Fill:     rl.Color{R: 248, G: 249, B: 250, A: 255},
		Outside:  rl.Color{R: 222, G: 226, B: 230, A: 255},
		Grid:     rl.Color{R: 224, G: 224, B: 224, A: 255},
		Border:   rl.Color{R: 173, G: 181, B: 189, A: 255},
		GridSize: gridSize,
	}
}

// Draw renders the floor for the given camera and world radius.
func (b *BackgroundRenderer) Draw(cam *camera.Camera, worldRadius float32) {
	rl.ClearBackground(b.Outside)

	cx, cy := cam.WorldToScreen(0, 0)
	center := rl.Vector2{X: cx, Y: cy}
	rl.DrawCircleV(center, worldRadius*cam.Zoom, b.Fill)

	xs, ys := cam.GridLines(b.GridSize)
	w, h := int32(cam.ViewportW), int32(cam.ViewportH)
	for _, x := range xs {
		sx, _ := cam.WorldToScreen(x, 0)
		rl.DrawLine(int32(sx), 0, int32(sx), h, b.Grid)
	}
	for _, y := range ys {
		_, sy := cam.WorldToScreen(0, y)
		rl.DrawLine(0, int32(sy), w, int32(sy), b.Grid)
	}

	rl.DrawRing(center, worldRadius*cam.Zoom, worldRadius*cam.Zoom+3, 0, 360, 128, b.Border)
}
