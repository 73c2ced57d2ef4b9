// Package telemetry provides arena statistics, performance tracking, run output and snapshots.
package telemetry

import "github.com/pthm-cable/arena/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventAbsorb EventType = iota
	EventSplit
	EventSpawn
	EventGameOver
)

// Event represents a single notable occurrence during a tick.
type Event struct {
	Type   EventType
	Tick   uint64
	CellID uint64
	Kind   components.Kind

	// Optional fields depending on event type
	TargetID   uint64          // Absorbed cell or split fragment
	TargetKind components.Kind // Kind of the absorbed cell
	Amount     float64         // Absorbed radius
	Score      int             // Points awarded, or final score on game over
}

// NewAbsorbEvent creates an absorption event.
func NewAbsorbEvent(tick, absorberID uint64, absorber components.Kind, absorbedID uint64, absorbed components.Kind, radius float64, score int) Event {
	return Event{
		Type:       EventAbsorb,
		Tick:       tick,
		CellID:     absorberID,
		Kind:       absorber,
		TargetID:   absorbedID,
		TargetKind: absorbed,
		Amount:     radius,
		Score:      score,
	}
}

// NewSplitEvent creates a split event.
func NewSplitEvent(tick, parentID, fragmentID uint64) Event {
	return Event{
		Type:     EventSplit,
		Tick:     tick,
		CellID:   parentID,
		Kind:     components.KindPlayer,
		TargetID: fragmentID,
	}
}

// NewSpawnEvent creates a food spawn event.
func NewSpawnEvent(tick, cellID uint64, radius float64) Event {
	return Event{
		Type:   EventSpawn,
		Tick:   tick,
		CellID: cellID,
		Kind:   components.KindFood,
		Amount: radius,
	}
}

// NewGameOverEvent creates the terminal event carrying the final score.
func NewGameOverEvent(tick uint64, finalScore int) Event {
	return Event{
		Type:  EventGameOver,
		Tick:  tick,
		Kind:  components.KindPlayer,
		Score: finalScore,
	}
}

// PlayerGain reports whether the event is the player absorbing another cell.
func (e Event) PlayerGain() bool {
	return e.Type == EventAbsorb && e.Kind.IsPlayer() && !e.TargetKind.IsPlayer()
}

// PlayerLoss reports whether the event is a player cell being absorbed.
func (e Event) PlayerLoss() bool {
	return e.Type == EventAbsorb && e.TargetKind.IsPlayer() && !e.Kind.IsPlayer()
}
