// Package config provides YAML-based game configuration loading and
// AI difficulty profiles for the light cycle arcade.
package config

// Config contains all tunable parameters for a light cycle session.
type Config struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Movement MovementConfig `yaml:"movement"`
	Energy   EnergyConfig   `yaml:"energy"`
	AI       AIConfig       `yaml:"ai"`
}

// ArenaConfig defines the play field dimensions.
// Zero values mean "fit to the available screen".
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MovementConfig defines cycle movement cadence.
// Cycles advance one cell every MoveEveryTicks simulation ticks; while
// boosting that interval is halved, which doubles the effective speed.
type MovementConfig struct {
	MoveEveryTicks  int `yaml:"move_every_ticks"`
	BoostLatchTicks int `yaml:"boost_latch_ticks"` // How long one boost press stays asserted
}

// EnergyConfig defines the boost energy meter.
// Rates are per second and converted to per-tick by the session tick rate.
type EnergyConfig struct {
	Max            float64 `yaml:"max"`
	DrainPerSecond float64 `yaml:"drain_per_second"`
	RegenPerSecond float64 `yaml:"regen_per_second"`
	MinToEngage    float64 `yaml:"min_to_engage"` // Boost won't start below this level
}

// AIProfile defines the decision parameters for one difficulty tier.
type AIProfile struct {
	// LookAhead is how many cells ahead a candidate heading is probed for
	// danger before it is considered unsafe.
	LookAhead int `yaml:"look_ahead"`

	// ErrorRate is the per-decision probability (0..1) of making a
	// deliberately sloppy choice, simulating reaction delay and mistakes.
	ErrorRate float64 `yaml:"error_rate"`

	// BoostThreshold is the minimum energy before the AI considers boosting.
	BoostThreshold float64 `yaml:"boost_threshold"`

	// BoostChance is the per-tick probability (0..1) of boosting once the
	// threshold is met and the path ahead is clear.
	BoostChance float64 `yaml:"boost_chance"`

	// FloodFillBudget caps the number of cells the reachable-area estimate
	// visits per candidate move. Zero disables flood fill for this tier.
	FloodFillBudget int `yaml:"flood_fill_budget"`
}

// AIConfig holds the per-difficulty AI profiles.
type AIConfig struct {
	Easy   AIProfile `yaml:"easy"`
	Medium AIProfile `yaml:"medium"`
	Hard   AIProfile `yaml:"hard"`
}

// Difficulty names an AI tier selectable from the menu.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Next returns the following difficulty in menu cycling order.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// Valid reports whether d names a known difficulty tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Profile returns the AI profile for the given difficulty.
func (c AIConfig) Profile(d Difficulty) AIProfile {
	switch d {
	case DifficultyEasy:
		return c.Easy
	case DifficultyHard:
		return c.Hard
	default:
		return c.Medium
	}
}
