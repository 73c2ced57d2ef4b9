package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
	"github.com/pthm-cable/arena/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Score       int
	HighScore   int
	PlayerCells int
	Largest     float64
	Cells       int
	Tick        uint64
	Time        time.Duration
	FPS         int32
}

// NewHUDData derives HUD values from a snapshot.
func NewHUDData(s *game.Snapshot, fps int32) HUDData {
	d := HUDData{
		Score:     s.Score,
		HighScore: s.HighScore,
		Cells:     len(s.Cells),
		Tick:      s.Tick,
		Time:      s.Time,
		FPS:       fps,
	}
	for _, c := range s.Cells {
		if c.IsPlayer {
			d.PlayerCells++
			d.Largest = max(d.Largest, c.Radius)
		}
	}
	return d
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the score panel in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	pad := r.Theme.Padding
	width := int32(220)
	height := r.Theme.LineHeight*5 + pad*2 + 8

	r.DrawPanel(pad, pad, width, height)
	x, y := pad*2, pad*2

	rl.DrawText(fmt.Sprintf("Score: %d", data.Score), x, y, 20, r.Theme.Highlight)
	y += 26
	y = r.DrawLabelValue(x, y, "High score", fmt.Sprintf("%d", data.HighScore))
	y = r.DrawLabelValue(x, y, "Cells", fmt.Sprintf("%d (%d yours)", data.Cells, data.PlayerCells))
	y = r.DrawLabelValue(x, y, "Size", fmt.Sprintf("%.0f", data.Largest))
	r.DrawLabelValue(x, y, "Time", data.Time.Round(time.Second).String())
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, h.renderer.Theme.LabelColor)
}

// PerfPanel renders per-phase tick timing.
type PerfPanel struct {
	renderer *Renderer
	anchor   PanelAnchor
	visible  bool
}

// NewPerfPanel creates a hidden performance panel.
func NewPerfPanel(anchor PanelAnchor) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), anchor: anchor}
}

// Toggle switches panel visibility.
func (p *PerfPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *PerfPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel for the given stats.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, screenW, screenH int32) {
	if !p.visible {
		return
	}
	r := p.renderer
	width := int32(300)
	height := r.Theme.LineHeight*int32(telemetry.NumPhases+3) + r.Theme.Padding*2
	x, y := p.anchor.Place(width, height, screenW, screenH, r.Theme.Padding)

	r.DrawPanel(x, y, width, height)
	x += r.Theme.Padding
	y += r.Theme.Padding

	y = r.DrawSectionHeader(x, y, "Tick timing")
	y = r.DrawLabelValue(x, y, "Avg tick", stats.AvgTickDuration.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%.0f", stats.FPS))
	for phase := telemetry.Phase(0); phase < telemetry.NumPhases; phase++ {
		y = r.DrawBar(x, y, phase.String(), stats.PhasePct[phase], width-r.Theme.Padding*2)
	}
}
