package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/arena/components"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the complete arena state at one tick, for post-mortem inspection.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`

	WorldRadius float64 `json:"world_radius"`
	Tick        uint64  `json:"tick"`
	SimTimeMS   int64   `json:"sim_time_ms"`
	Score       int     `json:"score"`
	Reason      string  `json:"reason,omitempty"`

	Cells []CellState `json:"cells"`
}

// CellState holds one cell's complete state.
type CellState struct {
	ID   uint64          `json:"id"`
	Kind components.Kind `json:"kind"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VelX   float64 `json:"vel_x"`
	VelY   float64 `json:"vel_y"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`

	SplitCount    int   `json:"split_count"`
	SplitCooldown int   `json:"split_cooldown"`
	LastSplitMS   int64 `json:"last_split_ms"`

	// AI only
	Mode    string   `json:"mode,omitempty"`
	TargetX *float64 `json:"target_x,omitempty"`
	TargetY *float64 `json:"target_y,omitempty"`
}

// Counts returns the number of cells of each kind in the snapshot.
func (s *Snapshot) Counts() [components.NumKinds]int {
	var counts [components.NumKinds]int
	for _, c := range s.Cells {
		if c.Kind < components.NumKinds {
			counts[c.Kind]++
		}
	}
	return counts
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Reason != "" {
		name += "_" + snapshot.Reason
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}
	return &snapshot, nil
}
