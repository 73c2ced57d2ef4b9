package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/arena/game"
)

// HoldWindow is how long one key press keeps a direction held. Terminals
// report presses and auto-repeats but never releases.
const HoldWindow = 250 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	numDirections
)

// keyHold turns discrete key presses into held directions.
type keyHold struct {
	until [numDirections]time.Time
}

// press holds dir until now + HoldWindow. Pressing a direction releases
// its opposite.
func (k *keyHold) press(dir direction, now time.Time) {
	k.until[dir] = now.Add(HoldWindow)
	switch dir {
	case dirUp:
		k.until[dirDown] = time.Time{}
	case dirDown:
		k.until[dirUp] = time.Time{}
	case dirLeft:
		k.until[dirRight] = time.Time{}
	case dirRight:
		k.until[dirLeft] = time.Time{}
	}
}

// release drops every held direction.
func (k *keyHold) release() {
	k.until = [numDirections]time.Time{}
}

// intent returns the directions still held at now.
func (k *keyHold) intent(now time.Time) game.Intent {
	held := func(d direction) bool { return now.Before(k.until[d]) }
	return game.Intent{
		Up:    held(dirUp),
		Down:  held(dirDown),
		Left:  held(dirLeft),
		Right: held(dirRight),
	}
}

// keyAction is what a key event asks the host to do.
type keyAction int

const (
	keyNone keyAction = iota
	keyMove
	keySplit
	keyStart
	keyQuit
	keyMute
)

// classifyKey maps a tcell key event to an action and, for moves, a direction.
func classifyKey(ev *tcell.EventKey) (keyAction, direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return keyMove, dirUp
	case tcell.KeyDown:
		return keyMove, dirDown
	case tcell.KeyLeft:
		return keyMove, dirLeft
	case tcell.KeyRight:
		return keyMove, dirRight
	case tcell.KeyEnter:
		return keyStart, 0
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyQuit, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return keyMove, dirUp
		case 's', 'S':
			return keyMove, dirDown
		case 'a', 'A':
			return keyMove, dirLeft
		case 'd', 'D':
			return keyMove, dirRight
		case ' ':
			return keySplit, 0
		case 'r', 'R':
			return keyStart, 0
		case 'q', 'Q':
			return keyQuit, 0
		case 'm', 'M':
			return keyMute, 0
		}
	}
	return keyNone, 0
}
