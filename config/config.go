// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Movement    MovementConfig    `yaml:"movement"`
	Split       SplitConfig       `yaml:"split"`
	AI          AIConfig          `yaml:"ai"`
	Collision   CollisionConfig   `yaml:"collision"`
	Food        FoodConfig        `yaml:"food"`
	Seeding     SeedingConfig     `yaml:"seeding"`
	Palette     []string          `yaml:"palette"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Persistence PersistenceConfig `yaml:"persistence"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the graphical host.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world dimensions and population sizes.
// The world is a disk of radius Size/2 centered on the origin.
type WorldConfig struct {
	Size         float64 `yaml:"size"`
	InitialCells int     `yaml:"initial_cells"`
	CapHeadroom  int     `yaml:"cap_headroom"`   // Spawner stops at InitialCells + CapHeadroom live cells
	GridCellSize float64 `yaml:"grid_cell_size"` // Spatial grid bucket size for vision queries
}

// PlayerConfig holds player cell parameters.
type PlayerConfig struct {
	StartRadius float64 `yaml:"start_radius"`
	Color       string  `yaml:"color"`
	Accel       float64 `yaml:"accel"`       // v += intent * speed * accel
	Damping     float64 `yaml:"damping"`     // Velocity multiplier per tick
	Restitution float64 `yaml:"restitution"` // Boundary bounce factor
}

// MovementConfig holds the shared speed model and non-player physics.
type MovementConfig struct {
	MaxBaseSpeed       float64 `yaml:"max_base_speed"`       // baseSpeed = max(min, max - size/divisor)
	MinBaseSpeed       float64 `yaml:"min_base_speed"`
	SizeDivisor        float64 `yaml:"size_divisor"`
	SplitBonus         float64 `yaml:"split_bonus"`          // Speed bonus per split count
	SlowdownRate       float64 `yaml:"slowdown_rate"`        // Bonus erosion per slowdown window
	SlowdownWindowMS   float64 `yaml:"slowdown_window_ms"`
	MinSpeedMultiplier float64 `yaml:"min_speed_multiplier"`
	DiagonalScale      float64 `yaml:"diagonal_scale"`       // Per-axis scale when both axes are pressed
	Damping            float64 `yaml:"damping"`              // Non-player velocity multiplier per tick
	Restitution        float64 `yaml:"restitution"`          // Non-player boundary bounce factor
	DriftChance        float64 `yaml:"drift_chance"`         // Per-tick impulse probability for drifters
	DriftImpulse       float64 `yaml:"drift_impulse"`        // Impulse range (centered)
}

// SplitConfig holds split mechanic parameters.
type SplitConfig struct {
	MinRadius     float64 `yaml:"min_radius"`      // Cell must be strictly larger to split
	Cooldown      int     `yaml:"cooldown"`        // Attempts before the cell may split again
	DecayMS       float64 `yaml:"decay_ms"`        // Split count decay window
	ParentScale   float64 `yaml:"parent_scale"`    // Parent radius multiplier
	FragmentScale float64 `yaml:"fragment_scale"`  // Fragment radius as fraction of the parent's pre-split radius
	FragmentSpeed float64 `yaml:"fragment_speed"`  // Fragment launch speed
	Recoil        float64 `yaml:"recoil"`          // Parent velocity change opposite the split direction
	MergeDelayMS  float64 `yaml:"merge_delay_ms"`  // Player cells ignore each other for this long after a split
}

// AIConfig holds AI perception and decision parameters.
type AIConfig struct {
	SizeThreshold      float64 `yaml:"size_threshold"`       // Seeded cells above this radius are AI
	VisionRadius       float64 `yaml:"vision_radius"`
	DecisionIntervalMS float64 `yaml:"decision_interval_ms"`
	FleeDistance       float64 `yaml:"flee_distance"`
	ChaseDistance      float64 `yaml:"chase_distance"`
	FleeTargetDistance float64 `yaml:"flee_target_distance"` // How far away the flee target is placed
	FoodMaxRadius      float64 `yaml:"food_max_radius"`      // Non-AI cells below this radius count as food
	WanderChance       float64 `yaml:"wander_chance"`
	WanderRange        float64 `yaml:"wander_range"`         // Full width of the wander box on each axis
	Accel              float64 `yaml:"accel"`                // v += dir * speed * accel
	ArriveDistance     float64 `yaml:"arrive_distance"`      // No steering within this distance of target
}

// CollisionConfig holds dominance and absorption parameters.
type CollisionConfig struct {
	DominanceRatio   float64 `yaml:"dominance_ratio"`   // A.r > B.r * ratio
	SplitMargin      int     `yaml:"split_margin"`      // A.n > B.n + margin
	ContactFactor    float64 `yaml:"contact_factor"`    // dist < factor * (A.r + B.r)
	AbsorbEfficiency float64 `yaml:"absorb_efficiency"` // Fraction of B's area added to A
	ScorePerRadius   float64 `yaml:"score_per_radius"`
}

// FoodConfig holds food spawner parameters.
type FoodConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
}

// SeedingConfig holds the initial population parameters.
type SeedingConfig struct {
	MinRadius     float64 `yaml:"min_radius"`
	RadiusRange   float64 `yaml:"radius_range"`
	MaxSplitCount int     `yaml:"max_split_count"` // Seeded count is uniform in [0, max)
	VelocityRange float64 `yaml:"velocity_range"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of session time per window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// PersistenceConfig holds the high score location.
type PersistenceConfig struct {
	HighScorePath string `yaml:"high_score_path"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldRadius      float64       // World.Size / 2
	FoodCap          int           // World.InitialCells + World.CapHeadroom
	DecisionInterval time.Duration // AI.DecisionIntervalMS
	SplitDecay       time.Duration // Split.DecayMS
	MergeDelay       time.Duration // Split.MergeDelayMS
	SlowdownWindow   time.Duration // Movement.SlowdownWindowMS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.World.Size <= 0 {
		return fmt.Errorf("world.size must be positive, got %v", c.World.Size)
	}
	if c.Player.StartRadius <= 0 {
		return fmt.Errorf("player.start_radius must be positive, got %v", c.Player.StartRadius)
	}
	if c.Food.MinRadius <= 0 || c.Food.MaxRadius < c.Food.MinRadius {
		return fmt.Errorf("food radius range [%v, %v) is invalid", c.Food.MinRadius, c.Food.MaxRadius)
	}
	if c.Seeding.MinRadius <= 0 {
		return fmt.Errorf("seeding.min_radius must be positive, got %v", c.Seeding.MinRadius)
	}
	if c.World.GridCellSize <= 0 {
		return fmt.Errorf("world.grid_cell_size must be positive, got %v", c.World.GridCellSize)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WorldRadius = c.World.Size / 2
	c.Derived.FoodCap = c.World.InitialCells + c.World.CapHeadroom
	c.Derived.DecisionInterval = millis(c.AI.DecisionIntervalMS)
	c.Derived.SplitDecay = millis(c.Split.DecayMS)
	c.Derived.MergeDelay = millis(c.Split.MergeDelayMS)
	c.Derived.SlowdownWindow = millis(c.Movement.SlowdownWindowMS)

	if len(c.Palette) == 0 {
		c.Palette = []string{"#3498db"}
	}
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
