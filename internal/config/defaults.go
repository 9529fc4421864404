package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It must stay in sync with defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:  800,
			Height: 720,
		},
		Player: PlayerConfig{
			Width:        200,
			Height:       200,
			GroundFrames: 8,
			AirFrames:    6,
			FPS:          20,
			JumpImpulse:  32,
			Weight:       1,
			Speed:        5,
		},
		Enemy: EnemyConfig{
			Width:  160,
			Height: 119,
			Frames: 5,
			FPS:    20,
			Speed:  8,
		},
		Background: BackgroundConfig{
			Width:  2400,
			Height: 720,
			Speed:  7,
		},
		Spawn: SpawnConfig{
			BaseIntervalMS: 1000,
			JitterMinMS:    500,
			JitterMaxMS:    1500,
		},
		HUD: HUDConfig{
			Font:         "40px Helvetica",
			ScoreX:       20,
			ScoreY:       50,
			ShadowOffset: 3,
			GameOverY:    200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 500,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
