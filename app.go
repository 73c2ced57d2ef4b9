package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/camera"
	"github.com/pthm-cable/arena/config"
	"github.com/pthm-cable/arena/game"
	"github.com/pthm-cable/arena/renderer"
	"github.com/pthm-cable/arena/telemetry"
	"github.com/pthm-cable/arena/ui"
)

// app is the raylib host: it feeds keyboard intent into the game, steps it
// once per frame with the measured delta and draws the snapshot.
type app struct {
	game  *game.Game
	clock game.TimeProvider

	camera     *camera.Camera
	background *renderer.BackgroundRenderer
	cells      *renderer.CellRenderer
	effects    *renderer.ParticleRenderer
	hud        *ui.HUD
	perfPanel  *ui.PerfPanel
	screens    *ui.Screens

	screenW, screenH int32
	lastFrame        time.Time // Zero before the first frame of a session
	lastOver         *game.GameOver
	effectsTick      uint64 // Tick whose events already produced effects
	quit             bool
}

func runGraphical(g *game.Game, cfg *config.Config, maxTicks uint64) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Cell Arena")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	a := newApp(g, cfg)
	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			g.Stop()
			break
		}
	}
	return nil
}

func newApp(g *game.Game, cfg *config.Config) *app {
	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	a := &app{
		game:       g,
		clock:      game.WallClock{},
		camera:     camera.New(float32(w), float32(h), float32(cfg.Player.StartRadius)),
		background: renderer.NewBackgroundRenderer(50),
		cells:      renderer.NewCellRenderer(),
		effects:    renderer.NewParticleRenderer(),
		hud:        ui.NewHUD(),
		perfPanel:  ui.NewPerfPanel(ui.AnchorTopRight),
		screens:    ui.NewScreens(),
		screenW:    w,
		screenH:    h,
	}
	g.OnGameOver(func(over game.GameOver) {
		a.lastOver = &over
	})
	return a
}

// start begins a fresh session.
func (a *app) start() {
	a.lastOver = nil
	a.lastFrame = time.Time{}
	a.effectsTick = 0
	a.effects.Clear()
	a.game.Start()
	a.camera.Reset()
}

// update handles input and advances the simulation by one frame.
func (a *app) update() {
	a.handleResize()

	if ui.PerfTogglePressed() {
		a.perfPanel.Toggle()
	}
	if a.game.State() != game.StatePlaying {
		if ui.StartPressed() {
			a.start()
		}
		return
	}

	a.game.SetIntent(ui.ReadIntent())
	if ui.SplitPressed() {
		a.game.RequestSplit()
	}

	now := a.clock.Now()
	var dt time.Duration
	if !a.lastFrame.IsZero() {
		dt = now.Sub(a.lastFrame)
	}
	a.lastFrame = now

	a.game.Step(dt)
	a.game.RecordFrame()
	a.effects.Update()
}

// handleResize checks for window resize and propagates new dimensions.
func (a *app) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	a.screenW = int32(rl.GetScreenWidth())
	a.screenH = int32(rl.GetScreenHeight())
	a.camera.Resize(float32(a.screenW), float32(a.screenH))
}

// draw renders the frame and applies any overlay button press.
func (a *app) draw() {
	snap := a.game.Snapshot()
	a.followCamera(&snap)
	a.emitEffects(&snap)

	rl.BeginDrawing()
	a.background.Draw(a.camera, float32(snap.WorldRadius))
	a.cells.Draw(&snap, a.camera)
	a.effects.Draw(a.camera)

	a.hud.Draw(ui.NewHUDData(&snap, rl.GetFPS()))
	a.hud.DrawControls(a.screenH, ui.ControlsHelp)
	a.perfPanel.Draw(a.game.PerfStats(), a.screenW, a.screenH)

	action := a.screens.Draw(snap.State, a.lastOver, snap.HighScore, a.screenW, a.screenH)
	rl.EndDrawing()

	switch action {
	case ui.ActionStart:
		a.start()
	case ui.ActionQuit:
		a.quit = true
	}
}

func (a *app) followCamera(snap *game.Snapshot) {
	var radius float32
	if largest, ok := snap.Largest(); ok {
		radius = float32(largest.Radius)
	}
	if snap.Tick <= 1 {
		a.camera.Snap(float32(snap.CameraX), float32(snap.CameraY), radius)
		return
	}
	a.camera.Follow(float32(snap.CameraX), float32(snap.CameraY), radius)
}

// emitEffects places a pop on the surviving cell of each absorption and split
// from the last tick.
func (a *app) emitEffects(snap *game.Snapshot) {
	events := a.game.Events()
	if len(events) == 0 || snap.Tick == a.effectsTick {
		return
	}
	a.effectsTick = snap.Tick
	byID := make(map[uint64]*game.CellView, len(snap.Cells))
	for i := range snap.Cells {
		byID[snap.Cells[i].ID] = &snap.Cells[i]
	}
	for _, ev := range events {
		if ev.Type != telemetry.EventAbsorb && ev.Type != telemetry.EventSplit {
			continue
		}
		if c, ok := byID[ev.CellID]; ok {
			a.effects.Emit(float32(c.X), float32(c.Y), float32(c.Radius), ev.Type)
		}
	}
}
