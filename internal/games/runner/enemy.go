package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Enemy walks left at a constant speed until it leaves the world.
type Enemy struct {
	Animator

	X, Y  float64
	W, H  float64
	Speed float64

	markedForDeletion bool
}

// NewEnemy creates an enemy standing on the ground just past the right edge.
func NewEnemy(cfg config.EnemyConfig, world config.WorldConfig, speed float64) *Enemy {
	return &Enemy{
		Animator: NewAnimator(cfg.FPS, cfg.Frames),
		X:        world.Width,
		Y:        world.Height - cfg.Height,
		W:        cfg.Width,
		H:        cfg.Height,
		Speed:    speed,
	}
}

// Bounds returns the enemy's rectangle in world pixels.
func (e *Enemy) Bounds() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// MarkedForDeletion reports whether the enemy has left the world.
func (e *Enemy) MarkedForDeletion() bool {
	return e.markedForDeletion
}

// Update animates and moves the enemy. It returns true exactly once: on the
// frame the enemy's right edge passes x=0. Marked enemies are frozen.
func (e *Enemy) Update(dt float64) bool {
	if e.markedForDeletion {
		return false
	}

	e.Advance(dt)
	e.X -= e.Speed

	if e.X+e.W < 0 {
		e.markedForDeletion = true
		return true
	}
	return false
}

// Draw blits the current frame. Marked enemies are not drawn.
func (e *Enemy) Draw(dst core.Surface) {
	if e.markedForDeletion {
		return
	}
	dst.Blit(core.ImageEnemy, e.SourceRect(e.W, e.H), e.Bounds())
}
