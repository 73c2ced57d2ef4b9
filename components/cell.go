package components

import "time"

// Split tracks a cell's split state. Times are instants on the session clock.
type Split struct {
	Count     int           // Recent splits; secondary dominance axis, decays toward 0
	Cooldown  int           // Split attempts remaining before the cell may split again
	LastSplit time.Duration // Anchors count decay and the speed bonus erosion
	MergeAt   time.Duration // Player cells ignore each other until this instant
}

// Mode is the branch an AI cell took on its last decision.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeFlee
	ModeChase
	ModeForage
	ModeWander
	NumModes
)

// String returns the display name for a Mode.
func (m Mode) String() string {
	names := ModeNames()
	if int(m) < len(names) {
		return names[m]
	}
	return "unknown"
}

// ModeNames returns the display names for all modes.
// The order matches the Mode constants.
func ModeNames() []string {
	return []string{"idle", "flee", "chase", "forage", "wander"}
}

// Brain holds AI decision state. Only KindAI cells carry it.
type Brain struct {
	LastDecision     time.Duration // Session instant of the last decision
	TargetX, TargetY float64       // Current pursuit/flee/forage/wander destination
	Mode             Mode
}
