package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/arena/camera"
	"github.com/pthm-cable/arena/game"
)

// Each terminal row covers two vertical units so circles look round.
const rowAspect = 2

var (
	styleBase   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder = styleBase.Foreground(tcell.ColorGray)
	styleHUD    = styleBase.Foreground(tcell.ColorYellow).Bold(true)
	styleTitle  = styleBase.Foreground(tcell.ColorAqua).Bold(true)
)

// view draws snapshots onto a tcell screen.
type view struct {
	screen tcell.Screen
	cam    *camera.Camera
	colors map[string]tcell.Color
}

func newView(screen tcell.Screen, startRadius float64) *view {
	w, h := screen.Size()
	cam := camera.New(float32(w), float32(h*rowAspect), float32(startRadius))
	cam.BaseZoom = 0.12
	cam.MinZoom = 0.02
	cam.MaxZoom = 0.5
	cam.Reset()
	return &view{screen: screen, cam: cam, colors: make(map[string]tcell.Color)}
}

func (v *view) resize() {
	w, h := v.screen.Size()
	v.cam.Resize(float32(w), float32(h*rowAspect))
	v.screen.Sync()
}

func (v *view) screenHeight() int {
	_, h := v.screen.Size()
	return h
}

func (v *view) color(hex string) tcell.Color {
	if c, ok := v.colors[hex]; ok {
		return c
	}
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		c = tcell.ColorFuchsia
	}
	v.colors[hex] = c
	return c
}

// follow moves the camera onto the snapshot's camera target.
func (v *view) follow(snap *game.Snapshot) {
	var radius float32
	if largest, ok := snap.Largest(); ok {
		radius = float32(largest.Radius)
	}
	if snap.Tick <= 1 {
		v.cam.Snap(float32(snap.CameraX), float32(snap.CameraY), radius)
		return
	}
	v.cam.Follow(float32(snap.CameraX), float32(snap.CameraY), radius)
}

// drawArena renders the world boundary and every cell, smallest first.
func (v *view) drawArena(snap *game.Snapshot) {
	v.follow(snap)
	v.screen.Clear()
	v.drawBoundary(snap.WorldRadius)
	for i := range snap.Cells {
		v.drawCell(&snap.Cells[i])
	}
}

func (v *view) drawBoundary(worldRadius float64) {
	r := float32(worldRadius)
	circumference := 2 * math.Pi * float64(r*v.cam.Zoom)
	steps := max(int(circumference), 32)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		wx := r * float32(math.Cos(a))
		wy := r * float32(math.Sin(a))
		sx, sy := v.cam.WorldToScreen(wx, wy)
		v.screen.SetContent(int(sx), int(sy)/rowAspect, '·', nil, styleBorder)
	}
}

func (v *view) drawCell(c *game.CellView) {
	x, y, r := float32(c.X), float32(c.Y), float32(c.Radius)
	if !v.cam.IsVisible(x, y, r) {
		return
	}
	sx, sy := v.cam.WorldToScreen(x, y)
	sr := r * v.cam.Zoom
	style := styleBase.Foreground(v.color(c.Color))

	if sr < 1 {
		v.screen.SetContent(int(sx), int(sy)/rowAspect, '•', nil, style)
		return
	}

	w, h := v.screen.Size()
	top := max(int((sy-sr)/rowAspect), 0)
	bottom := min(int((sy+sr)/rowAspect), h-1)
	for row := top; row <= bottom; row++ {
		dy := float32(row*rowAspect+1) - sy
		span := sr*sr - dy*dy
		if span < 0 {
			continue
		}
		half := float32(math.Sqrt(float64(span)))
		left := max(int(sx-half), 0)
		right := min(int(sx+half), w-1)
		for col := left; col <= right; col++ {
			v.screen.SetContent(col, row, '█', nil, style)
		}
	}
	if c.IsPlayer {
		v.screen.SetContent(int(sx), int(sy)/rowAspect, '@', nil, styleBase.Foreground(tcell.ColorBlack).Background(v.color(c.Color)))
	}
}

// drawHUD writes the score line across the top row.
func (v *view) drawHUD(snap *game.Snapshot, muted bool) {
	line := fmt.Sprintf(" score %d  best %d  cells %d  t %.1fs ",
		snap.Score, snap.HighScore, len(snap.Cells), snap.Time.Seconds())
	if muted {
		line += " [muted]"
	}
	v.text(0, 0, line, styleHUD)
}

// drawMenu renders the title or game-over card over whatever is on screen.
func (v *view) drawMenu(last *game.GameOver, highScore int) {
	w, h := v.screen.Size()
	lines := []string{"CELL ARENA", "", fmt.Sprintf("high score %d", highScore), "", "enter: play   q: quit"}
	if last != nil {
		lines[0] = "GAME OVER"
		lines[2] = fmt.Sprintf("score %d   high score %d", last.FinalScore, highScore)
		if last.NewHighScore {
			lines[1] = "new high score!"
		}
		lines[4] = "r: play again   q: quit"
	}
	top := h/2 - len(lines)/2
	for i, l := range lines {
		style := styleBase
		if i == 0 {
			style = styleTitle
		}
		v.text((w-len([]rune(l)))/2, top+i, l, style)
	}
	v.text(0, h-1, controlsHelp, styleBorder)
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

const controlsHelp = " wasd/arrows move  space split  m mute  q quit"
