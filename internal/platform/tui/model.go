package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// Model is the Bubble Tea model running one game of the runner.
type Model struct {
	game    *runner.Game
	input   *core.InputState
	hold    *HoldTracker
	clock   *runner.Clock
	screen  *core.Screen
	surface *ScreenSurface
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	width     int
	height    int
	lastScore int
	halted    bool // Game over: no more ticks are scheduled
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards everything.
func NewModel(game *runner.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gc := game.Config()

	input := core.NewInputState()
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		input:  input,
		hold:   NewHoldTracker(input, cfg.HoldWindow),
		clock:  &runner.Clock{},
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())
	m.surface = NewScreenSurface(m.screen, gc.World.Width, gc.World.Height, DefaultSheets(
		gc.Player.Width, gc.Player.Height,
		gc.Enemy.Width, gc.Enemy.Height,
		gc.Background.Width, gc.Background.Height,
	))
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.game.State().Score, "status", m.game.Status())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if k := m.keys.Direction(msg); k != core.KeyNone {
		m.hold.Press(k, time.Now())
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// only the rasterization changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen()
	return m, nil
}

// resizeScreen fits the screen above the help footer. After game over the
// last frame is kept as is, since nothing would redraw it.
func (m *Model) resizeScreen() {
	if m.halted {
		return
	}
	m.screen.Resize(m.width, m.playHeight())
}

// playHeight returns the rows left for the world below the footer.
func (m Model) playHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 1)
}

// handleTick runs one frame and schedules the next unless the game is over.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.halted {
		return m, nil
	}

	m.hold.Expire(now)
	running := m.game.Frame(m.clock.Stamp(now), m.input, m.surface)

	st := m.game.State()
	if st.Score != m.lastScore {
		m.logger.Debug("enemy passed", "score", st.Score, "frame", st.Frames)
		m.lastScore = st.Score
	}

	if !running {
		m.halted = true
		m.logger.Info("game over", "score", st.Score, "frames", st.Frames)
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Halted reports whether the game ended and the tick loop stopped.
func (m Model) Halted() bool {
	return m.halted
}

// View renders the last drawn frame with the help footer below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game *runner.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	return nil
}
