// Package renderer draws arena snapshots with raylib.
package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/camera"
	"github.com/pthm-cable/arena/game"
)

// CellRenderer draws cells from a snapshot, smallest first.
type CellRenderer struct {
	colors *ColorCache

	Shadow      rl.Color
	PlayerInner rl.Color
	PlayerOuter rl.Color
	Rim         rl.Color
}

// NewCellRenderer creates a cell renderer.
func NewCellRenderer() *CellRenderer {
	return &CellRenderer{
		colors:      NewColorCache(),
		Shadow:      rl.Color{R: 0, G: 0, B: 0, A: 50},
		PlayerInner: rl.Red,
		PlayerOuter: rl.White,
		Rim:         rl.Color{R: 255, G: 255, B: 255, A: 76},
	}
}

// Draw renders all visible cells. Snapshot cells are already ordered by
// ascending radius, so larger cells end up on top.
func (r *CellRenderer) Draw(snap *game.Snapshot, cam *camera.Camera) {
	for i := range snap.Cells {
		c := &snap.Cells[i]
		x, y, radius := float32(c.X), float32(c.Y), float32(c.Radius)
		if !cam.IsVisible(x, y, radius) {
			continue
		}

		sx, sy := cam.WorldToScreen(x, y)
		sr := radius * cam.Zoom
		center := rl.Vector2{X: sx, Y: sy}

		rl.DrawCircleV(rl.Vector2{X: sx + 3, Y: sy + 3}, sr, r.Shadow)
		rl.DrawCircleV(center, sr, r.colors.Get(c.Color))

		if c.IsPlayer {
			rl.DrawRing(center, sr-1, sr+2, 0, 360, 64, r.PlayerOuter)
			rl.DrawRing(center, sr, sr+1, 0, 360, 64, r.PlayerInner)
		} else {
			rl.DrawRing(center, sr-1, sr+1, 0, 360, 48, r.Rim)
		}

		if c.SplitCount > 0 {
			r.drawSplitCount(c, sx, sy, sr)
		}
	}
}

func (r *CellRenderer) drawSplitCount(c *game.CellView, sx, sy, sr float32) {
	text := fmt.Sprintf("x%d", c.SplitCount)
	size := int32(max(12, sr*0.4))
	color := rl.Black
	if c.IsPlayer {
		color = rl.White
	}
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(sx)-w/2, int32(sy)-size/2, size, color)
}
