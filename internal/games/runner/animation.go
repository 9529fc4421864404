package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Animator is the frame timer shared by every animated sprite.
// It is embedded by value in Player and Enemy.
type Animator struct {
	Frame    int     // Current column in the sprite sheet
	MaxFrame int     // Last frame index before wrapping to 0
	Row      int     // Sprite sheet row
	Timer    float64 // Milliseconds accumulated since the last advance
	Interval float64 // Milliseconds between advances (1000 / fps)
}

// NewAnimator creates an animator ticking at fps on row 0.
func NewAnimator(fps float64, maxFrame int) Animator {
	return Animator{
		MaxFrame: maxFrame,
		Interval: 1000 / fps,
	}
}

// Advance feeds dt milliseconds into the timer. Once the timer has exceeded
// the interval the next call moves to the next frame and resets the timer,
// so an advance never consumes that call's dt.
func (a *Animator) Advance(dt float64) {
	if a.Timer > a.Interval {
		if a.Frame >= a.MaxFrame {
			a.Frame = 0
		} else {
			a.Frame++
		}
		a.Timer = 0
	} else {
		a.Timer += dt
	}
}

// SetSheet switches to another frame set. The current frame is kept; if it is
// past the new MaxFrame the next advance wraps it to 0.
func (a *Animator) SetSheet(maxFrame, row int) {
	a.MaxFrame = maxFrame
	a.Row = row
}

// SourceRect returns the sheet region of the current frame for a w*h cell grid.
func (a Animator) SourceRect(w, h float64) core.RectF {
	return core.NewRectF(float64(a.Frame)*w, float64(a.Row)*h, w, h)
}
