// Package window is the desktop frontend of the runner, built on Ebitengine.
// It draws the world at its native size into an offscreen canvas and reads
// the keyboard state directly, so key releases are exact.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// keyBindings maps each directional key to the physical keys that hold it.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
	core.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// syncInput presses every direction with at least one bound key down and
// releases the rest.
func syncInput(in *core.InputState, pressed func(ebiten.Key) bool) {
	for k, keys := range keyBindings {
		down := false
		for _, ek := range keys {
			if pressed(ek) {
				down = true
				break
			}
		}
		if down {
			in.Press(k)
		} else {
			in.Release(k)
		}
	}
}

// Window implements ebiten.Game around a runner game.
type Window struct {
	game    *runner.Game
	input   *core.InputState
	clock   *runner.Clock
	canvas  *ebiten.Image
	surface *ImageSurface
	logger  *log.Logger

	width     int
	height    int
	lastScore int
	halted    bool

	now     func() time.Time
	pressed func(ebiten.Key) bool
}

// New creates the window frontend. A nil logger discards everything.
func New(game *runner.Game, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := game.Config()
	w, h := int(cfg.World.Width), int(cfg.World.Height)
	canvas := ebiten.NewImage(w, h)

	return &Window{
		game:    game,
		input:   core.NewInputState(),
		clock:   &runner.Clock{},
		canvas:  canvas,
		surface: NewImageSurface(canvas, buildSheets(cfg)),
		logger:  logger,
		width:   w,
		height:  h,
		now:     time.Now,
		pressed: ebiten.IsKeyPressed,
	}
}

// Update runs one frame. Escape ends the program; after game over the last
// frame stays on screen until the window is closed.
func (w *Window) Update() error {
	if w.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if w.halted {
		return nil
	}

	syncInput(w.input, w.pressed)
	running := w.game.Frame(w.clock.Stamp(w.now()), w.input, w.surface)

	st := w.game.State()
	if st.Score != w.lastScore {
		w.logger.Debug("enemy passed", "score", st.Score, "frame", st.Frames)
		w.lastScore = st.Score
	}
	if !running {
		w.halted = true
		w.logger.Info("game over", "score", st.Score, "frames", st.Frames)
	}
	return nil
}

// Draw copies the canvas to the screen.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.canvas, nil)
}

// Layout returns the world size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Halted reports whether the game ended.
func (w *Window) Halted() bool {
	return w.halted
}

// Run opens a window and blocks until it is closed or Escape is pressed.
func Run(game *runner.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	win := New(game, logger)

	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	ebiten.SetWindowTitle("Runner")
	ebiten.SetWindowSize(win.width, win.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	win.logger.Info("game started", "seed", cfg.Seed, "fps", cfg.TickRate)
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window frontend: %w", err)
	}
	win.logger.Info("window closed", "score", game.State().Score, "status", game.Status())
	return nil
}
