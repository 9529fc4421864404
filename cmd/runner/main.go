// runner is a side-scrolling arcade runner: jump over the enemies walking in
// from the right, and score a point for every one that walks off screen.
//
// Usage:
//
//	runner play          - Play in the terminal
//	runner window        - Play in a desktop window
//	runner simulate      - Run the game headless and report the result
//	runner config        - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Game flags shared by play, window, simulate and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump over enemies in a side-scrolling arcade game",
	Long: `Runner is a side-scrolling arcade game. Enemies walk in from the right;
jump over them to score. One touch ends the game.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run headless with a scripted autopilot
  config    - Print the effective configuration

Examples:
  runner play
  runner play --difficulty hard
  runner window --seed 42
  runner simulate --frames 3600 --jump-every 40
  runner config --config ./my-runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	for _, cmd := range []*cobra.Command{playCmd, windowCmd, simulateCmd, configCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		rootCmd.AddCommand(cmd)
	}
}

// newLogger builds the program logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the runner configuration from --config and --difficulty.
func loadConfig(logger *log.Logger) (config.RunnerConfig, error) {
	cfg, skipped, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	for _, s := range skipped {
		logger.Warn("config ignored", "path", s.Path, "err", s.Err)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			logger.Warn("unknown difficulty preset, keeping config", "difficulty", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

// runtimeConfig builds the frontend settings on top of core.DefaultConfig;
// a zero seed picks one from the clock.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}
