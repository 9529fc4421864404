package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Background is a horizontally scrolling tile that wraps seamlessly.
type Background struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// NewBackground creates a background at the origin.
func NewBackground(cfg config.BackgroundConfig) *Background {
	return &Background{
		W:     cfg.Width,
		H:     cfg.Height,
		Speed: cfg.Speed,
	}
}

// Update scrolls the tile left and wraps to 0 once it has moved
// more than a full tile width.
func (b *Background) Update() {
	b.X -= b.Speed
	if b.X < -b.W {
		b.X = 0
	}
}

// Draw blits the tile twice. The second copy overlaps the first by Speed
// pixels so no seam shows between repetitions.
func (b *Background) Draw(dst core.Surface) {
	src := core.NewRectF(0, 0, b.W, b.H)
	dst.Blit(core.ImageBackground, src, core.NewRectF(b.X, b.Y, b.W, b.H))
	dst.Blit(core.ImageBackground, src, core.NewRectF(b.X+b.W-b.Speed, b.Y, b.W, b.H))
}
