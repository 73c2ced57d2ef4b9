package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
)

func TestIntentFrom(t *testing.T) {
	tests := []struct {
		name string
		keys []int32
		want game.Intent
	}{
		{"none", nil, game.Intent{}},
		{"wasd up", []int32{rl.KeyW}, game.Intent{Up: true}},
		{"arrow up", []int32{rl.KeyUp}, game.Intent{Up: true}},
		{"diagonal mixed", []int32{rl.KeyS, rl.KeyRight}, game.Intent{Down: true, Right: true}},
		{"opposites held", []int32{rl.KeyA, rl.KeyD}, game.Intent{Left: true, Right: true}},
		{"unbound key", []int32{rl.KeyQ}, game.Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := make(map[int32]bool)
			for _, k := range tt.keys {
				held[k] = true
			}
			got := IntentFrom(func(k int32) bool { return held[k] })
			if got != tt.want {
				t.Errorf("IntentFrom(%v) = %+v, want %+v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestAnchorPlace(t *testing.T) {
	tests := []struct {
		anchor PanelAnchor
		x, y   int32
	}{
		{AnchorTopLeft, 10, 10},
		{AnchorTopRight, 690, 10},
		{AnchorBottomLeft, 10, 490},
		{AnchorBottomRight, 690, 490},
		{AnchorCenter, 350, 250},
	}
	for _, tt := range tests {
		x, y := tt.anchor.Place(100, 100, 800, 600, 10)
		if x != tt.x || y != tt.y {
			t.Errorf("anchor %d placed at (%d, %d), want (%d, %d)", tt.anchor, x, y, tt.x, tt.y)
		}
	}
}

func TestNewHUDData(t *testing.T) {
	snap := game.Snapshot{
		Cells: []game.CellView{
			{ID: 3, Radius: 10},
			{ID: 0, Radius: 21, IsPlayer: true},
			{ID: 5, Radius: 15, IsPlayer: true},
			{ID: 1, Radius: 40},
		},
		Score:     120,
		HighScore: 300,
		Tick:      99,
	}

	d := NewHUDData(&snap, 60)
	if d.PlayerCells != 2 || d.Largest != 21 || d.Cells != 4 {
		t.Errorf("unexpected HUD data %+v", d)
	}
	if d.Score != 120 || d.HighScore != 300 || d.FPS != 60 {
		t.Errorf("unexpected HUD header %+v", d)
	}
}
