// Package runner implements a side-scrolling arcade runner: the player jumps
// over enemies walking in from the right while the backdrop scrolls past.
// Touching an enemy ends the game; every enemy that walks off the left edge
// scores a point.
package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Status is the state of the frame driver.
type Status int

const (
	StatusRunning  Status = iota
	StatusGameOver        // Terminal, there is no restart
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusGameOver {
		return "game over"
	}
	return "running"
}

// Game owns the whole simulation: background, player, enemies, score and
// the terminal game-over flag.
type Game struct {
	cfg        config.RunnerConfig
	background *Background
	player     *Player
	enemies    *EnemyManager
	difficulty *config.DifficultyManager

	score    int     // Enemies survived, never decreases
	gameOver bool    // Once true, Frame does nothing
	lastTime float64 // Timestamp of the previous frame in milliseconds
	frames   int
}

// New creates a game ready for its first frame. seed drives spawn jitter.
func New(cfg config.RunnerConfig, seed int64) *Game {
	g := &Game{cfg: cfg}
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.background = NewBackground(cfg.Background)
	g.player = NewPlayer(cfg.Player, cfg.World)
	g.enemies = NewEnemyManager(seed, &g.cfg, g.difficulty)
	return g
}

// Frame runs one frame at the given timestamp (milliseconds, monotonic,
// starting at 0) and draws it into dst. It returns false once the game is
// over; the caller must stop scheduling frames then. Calling Frame after
// game over changes nothing.
//
// Order within a frame is fixed: background, player (including the
// collision test against enemies as they stood at frame start), enemies,
// status text.
func (g *Game) Frame(timestamp float64, in *core.InputState, dst core.Surface) bool {
	if g.gameOver {
		return false
	}

	dt := timestamp - g.lastTime
	g.lastTime = timestamp
	g.frames++

	dst.Clear(g.WorldRect())

	g.background.Draw(dst)
	g.background.Update()

	g.player.Draw(dst)
	if g.player.Update(in, dt, g.enemies.Enemies()) {
		g.gameOver = true
	}

	g.score += g.enemies.Tick(dt, dst, g.State())

	g.drawStatus(dst)

	return !g.gameOver
}

// drawStatus renders the score and, once the game is over, the overlay.
// Each line is drawn twice: a black shadow, then white text offset up-left.
func (g *Game) drawStatus(dst core.Surface) {
	hud := g.cfg.HUD
	off := hud.ShadowOffset
	scoreText := fmt.Sprintf("Score: %d", g.score)

	dst.SetFont(hud.Font)
	dst.SetTextAlign(core.AlignLeft)
	dst.SetFillColor(core.ColorBlack)
	dst.FillText(scoreText, hud.ScoreX, hud.ScoreY)
	dst.SetFillColor(core.ColorWhite)
	dst.FillText(scoreText, hud.ScoreX-off, hud.ScoreY-off)

	if g.gameOver {
		cx := g.cfg.World.Width / 2
		dst.SetTextAlign(core.AlignCenter)
		dst.SetFillColor(core.ColorBlack)
		dst.FillText("GAME OVER", cx, hud.GameOverY)
		dst.SetFillColor(core.ColorWhite)
		dst.FillText("GAME OVER", cx-off, hud.GameOverY-off)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Frames:   g.frames,
	}
}

// Status returns whether the game is still running.
func (g *Game) Status() Status {
	if g.gameOver {
		return StatusGameOver
	}
	return StatusRunning
}

// WorldRect returns the world bounds.
func (g *Game) WorldRect() core.RectF {
	return core.NewRectF(0, 0, g.cfg.World.Width, g.cfg.World.Height)
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Player returns the player. Frontends and tests read it; they must not mutate it.
func (g *Game) Player() *Player {
	return g.player
}

// Background returns the scrolling backdrop.
func (g *Game) Background() *Background {
	return g.background
}

// Enemies returns the enemy manager.
func (g *Game) Enemies() *EnemyManager {
	return g.enemies
}

// Score returns the number of enemies survived.
func (g *Game) Score() int {
	return g.score
}

// GameOver reports whether the player has been hit.
func (g *Game) GameOver() bool {
	return g.gameOver
}
