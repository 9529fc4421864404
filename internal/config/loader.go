package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunnerFile is the file name looked up in the user and local config directories.
const RunnerFile = "runner.yaml"

// SkippedConfig describes a config file that was found but could not be used,
// so the search moved on to the next candidate.
type SkippedConfig struct {
	Path string
	Err  error
}

// Error implements error.
func (s SkippedConfig) Error() string {
	return fmt.Sprintf("config %s ignored: %v", s.Path, s.Err)
}

// Unwrap returns the read or parse error.
func (s SkippedConfig) Unwrap() error {
	return s.Err
}

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
//
// A broken custom path is an error. Broken files in the search directories
// are skipped and reported in the returned slice; missing files are not.
func LoadRunner(customPath string) (RunnerConfig, []SkippedConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil, nil
	}

	var skipped []SkippedConfig
	candidates := []string{
		userConfigPath(RunnerFile),
		filepath.Join("configs", RunnerFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			skipped = append(skipped, SkippedConfig{Path: path, Err: err})
			continue
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			skipped = append(skipped, SkippedConfig{Path: path, Err: err})
			continue
		}
		return cfg, skipped, nil
	}

	// Use embedded default YAML
	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), skipped, nil // Fallback to hardcoded if embed fails
	}
	return cfg, skipped, nil
}

// ParseRunner decodes YAML over the default configuration and validates the result.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c RunnerConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every value that would break the simulation.
func (c RunnerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.fps", c.Player.FPS)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.fps", c.Enemy.FPS)
	positive("background.width", c.Background.Width)
	positive("background.height", c.Background.Height)

	if c.Player.Width > c.World.Width || c.Player.Height > c.World.Height {
		errs = append(errs, errors.New("player does not fit inside the world"))
	}
	if c.Player.GroundFrames < 0 || c.Player.AirFrames < 0 || c.Enemy.Frames < 0 {
		errs = append(errs, errors.New("frame counts must not be negative"))
	}
	if c.Spawn.BaseIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("spawn.base_interval_ms must not be negative, got %v", c.Spawn.BaseIntervalMS))
	}
	if c.Spawn.JitterMinMS < 0 || c.Spawn.JitterMinMS >= c.Spawn.JitterMaxMS {
		errs = append(errs, fmt.Errorf("spawn jitter range [%v, %v) is empty or negative",
			c.Spawn.JitterMinMS, c.Spawn.JitterMaxMS))
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none",
			c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
