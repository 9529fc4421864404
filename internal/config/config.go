// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

// RunnerConfig contains every tunable of the side-scrolling runner.
// Units are world pixels, milliseconds and frames.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Background BackgroundConfig `yaml:"background"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	HUD        HUDConfig        `yaml:"hud"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the size of the simulated world.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite and its kinematics.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundFrames int     `yaml:"ground_frames"` // Max frame index while running
	AirFrames    int     `yaml:"air_frames"`    // Max frame index while airborne
	FPS          float64 `yaml:"fps"`           // Animation rate, independent of render rate
	JumpImpulse  float64 `yaml:"jump_impulse"`  // Subtracted from yVel once per jump
	Weight       float64 `yaml:"weight"`        // Added to yVel every airborne frame
	Speed        float64 `yaml:"speed"`         // Horizontal speed per frame
}

// EnemyConfig defines the enemy sprite and its motion.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Frames int     `yaml:"frames"` // Max frame index
	FPS    float64 `yaml:"fps"`
	Speed  float64 `yaml:"speed"` // Leftward pixels per frame
}

// BackgroundConfig defines the scrolling backdrop tile.
type BackgroundConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SpawnConfig defines enemy spawn scheduling.
type SpawnConfig struct {
	BaseIntervalMS float64 `yaml:"base_interval_ms"`
	JitterMinMS    float64 `yaml:"jitter_min_ms"` // Inclusive
	JitterMaxMS    float64 `yaml:"jitter_max_ms"` // Exclusive
}

// HUDConfig defines status text placement.
type HUDConfig struct {
	Font         string  `yaml:"font"`
	ScoreX       float64 `yaml:"score_x"`
	ScoreY       float64 `yaml:"score_y"`
	ShadowOffset float64 `yaml:"shadow_offset"` // Highlight is drawn this far up-left of the shadow
	GameOverY    float64 `yaml:"game_over_y"`
}

// DifficultyConfig defines the optional difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`    // Added to enemy speed multiplier at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Milliseconds cut from the base spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty or unknown strings
// return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
