package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/arena/game"
)

func TestKeyHoldExpires(t *testing.T) {
	start := time.Unix(1000, 0)
	var k keyHold
	k.press(dirLeft, start)

	tests := []struct {
		name  string
		after time.Duration
		want  game.Intent
	}{
		{"just pressed", 0, game.Intent{Left: true}},
		{"inside window", HoldWindow - time.Millisecond, game.Intent{Left: true}},
		{"window elapsed", HoldWindow, game.Intent{}},
		{"long after", time.Second, game.Intent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.intent(start.Add(tt.after)); got != tt.want {
				t.Errorf("intent after %v = %+v, want %+v", tt.after, got, tt.want)
			}
		})
	}
}

func TestKeyHoldOppositeReleases(t *testing.T) {
	now := time.Unix(1000, 0)
	var k keyHold
	k.press(dirUp, now)
	k.press(dirRight, now)
	k.press(dirDown, now)

	want := game.Intent{Down: true, Right: true}
	if got := k.intent(now); got != want {
		t.Errorf("intent = %+v, want %+v", got, want)
	}

	k.release()
	if got := k.intent(now); got != (game.Intent{}) {
		t.Errorf("intent after release = %+v, want none", got)
	}
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	start := time.Unix(1000, 0)
	var k keyHold
	k.press(dirUp, start)
	k.press(dirUp, start.Add(200*time.Millisecond))

	if !k.intent(start.Add(400 * time.Millisecond)).Up {
		t.Error("auto-repeat should extend the hold")
	}
}

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name       string
		ev         *tcell.EventKey
		wantAction keyAction
		wantDir    direction
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), keyMove, dirUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), keyMove, dirLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), keyMove, dirRight},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), keyMove, dirDown},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), keySplit, 0},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), keyStart, 0},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), keyStart, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), keyQuit, 0},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), keyMute, 0},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), keyNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := classifyKey(tt.ev)
			if action != tt.wantAction {
				t.Errorf("action = %v, want %v", action, tt.wantAction)
			}
			if action == keyMove && dir != tt.wantDir {
				t.Errorf("dir = %v, want %v", dir, tt.wantDir)
			}
		})
	}
}

func TestAbsorbPitch(t *testing.T) {
	tests := []struct {
		radius float64
		want   float64
	}{
		{0, 1320},
		{20, 825},
		{40, 330},
		{400, 330},
	}
	for _, tt := range tests {
		if got := absorbPitch(tt.radius); got != tt.want {
			t.Errorf("absorbPitch(%v) = %v, want %v", tt.radius, got, tt.want)
		}
	}
	if absorbPitch(5) <= absorbPitch(10) {
		t.Error("smaller absorptions should sound higher")
	}
}

func TestSilentSoundIgnoresEvents(t *testing.T) {
	s := &Sound{}
	s.Play(nil)
	if !s.ToggleMute() {
		t.Error("first toggle should mute")
	}
	if s.ToggleMute() {
		t.Error("second toggle should unmute")
	}
}
