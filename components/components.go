// Package components defines ECS components for the arena simulation.
package components

// Kind is the role of a cell. Behavior is selected by Kind through the
// systems behavior table, never by combinations of flags.
type Kind uint8

const (
	KindPlayer  Kind = iota // Controlled by the input intent
	KindAI                  // Autonomous perception/decision cell
	KindDrifter             // Seeded passive cell with random-walk motion
	KindFood                // Spawned passive cell with random-walk motion

	NumKinds
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAI:
		return "ai"
	case KindDrifter:
		return "drifter"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// IsPlayer reports whether the cell belongs to the player's mass.
func (k Kind) IsPlayer() bool {
	return k == KindPlayer
}

// IsAI reports whether the cell runs the AI decision loop.
func (k Kind) IsAI() bool {
	return k == KindAI
}

// IsPassive reports whether the cell only drifts.
func (k Kind) IsPassive() bool {
	return k == KindDrifter || k == KindFood
}

// Identity holds a cell's session-unique ID and its role.
// IDs increase monotonically and are never reused within a session.
type Identity struct {
	ID   uint64
	Kind Kind
}
