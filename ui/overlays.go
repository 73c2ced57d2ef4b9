package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
)

// Action is what the player chose on a menu screen this frame.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionQuit
)

// Screens draws the start menu and game-over overlays.
type Screens struct {
	renderer *Renderer
}

// NewScreens creates the overlay screens.
func NewScreens() *Screens {
	return &Screens{renderer: NewRenderer()}
}

// Draw renders the overlay for the session state and returns the button
// pressed, if any. Nothing is drawn while playing.
func (s *Screens) Draw(state game.State, last *game.GameOver, highScore int, screenW, screenH int32) Action {
	switch state {
	case game.StateMenu, game.StateStopped:
		return s.drawMenu(highScore, screenW, screenH)
	case game.StateGameOver:
		return s.drawGameOver(last, highScore, screenW, screenH)
	}
	return ActionNone
}

func (s *Screens) drawMenu(highScore int, screenW, screenH int32) Action {
	r := s.renderer
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.Dim)

	y := screenH/2 - 120
	r.DrawCenteredText("Cell Arena", y, r.Theme.TitleFontSize, screenW, rl.White)
	y += r.Theme.TitleFontSize + 12
	r.DrawCenteredText("WASD / arrows to move, Space to split", y, 18, screenW, rl.RayWhite)
	y += 28
	if highScore > 0 {
		r.DrawCenteredText(fmt.Sprintf("High score: %d", highScore), y, 18, screenW, rl.Gold)
	}

	return s.buttons("Start", screenW, screenH/2+20)
}

func (s *Screens) drawGameOver(last *game.GameOver, highScore int, screenW, screenH int32) Action {
	r := s.renderer
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.Dim)

	y := screenH/2 - 120
	r.DrawCenteredText("Game Over", y, r.Theme.TitleFontSize, screenW, rl.White)
	y += r.Theme.TitleFontSize + 12

	if last != nil {
		r.DrawCenteredText(fmt.Sprintf("Score: %d", last.FinalScore), y, 24, screenW, rl.RayWhite)
		y += 32
		if last.NewHighScore {
			r.DrawCenteredText("New high score!", y, 20, screenW, rl.Gold)
		} else if highScore > 0 {
			r.DrawCenteredText(fmt.Sprintf("High score: %d", highScore), y, 20, screenW, rl.Gold)
		}
	}

	return s.buttons("Play again", screenW, screenH/2+20)
}

func (s *Screens) buttons(primary string, screenW, y int32) Action {
	const w, h = 160, 36
	x := float32(screenW-w) / 2
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: w, Height: h}, primary) {
		return ActionStart
	}
	if gui.Button(rl.Rectangle{X: x, Y: float32(y) + h + 10, Width: w, Height: h}, "Quit") {
		return ActionQuit
	}
	return ActionNone
}
