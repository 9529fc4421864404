package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var flagHold time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play the runner in the terminal.

Controls:
  Space/Up/W  - Jump
  Left/A      - Run left
  Right/D     - Run right
  ?           - Toggle help
  Ctrl+S      - Save a screenshot
  Q/Esc       - Quit

Terminals do not report key releases, so a direction stays held for --hold
after its last key repeat. Raise it if running stutters (the hold must
outlast your keyboard's auto-repeat delay), lower it for snappier stops.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression (default)

Logs go to --log-file only, since the game owns the terminal.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagHold, "hold", core.DefaultHoldWindow, "How long a key stays held after its last repeat")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := runtimeConfig(width, height)
	rt.HoldWindow = flagHold

	game := runner.New(cfg, rt.Seed)
	if err := tui.Run(game, rt, logger); err != nil {
		return err
	}

	fmt.Printf("Score: %d (%s)\n", game.Score(), game.Status())
	return nil
}
