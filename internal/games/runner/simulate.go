package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Autopilot scripts the held keys of a headless run.
type Autopilot struct {
	JumpEvery int  // Hold Up for one frame every JumpEvery frames; 0 never jumps
	HoldRight bool // Keep Right held for the whole run
}

// apply sets the keys held for frame i.
func (a Autopilot) apply(in *core.InputState, i int) {
	if a.HoldRight {
		in.Press(core.KeyRight)
	}
	if a.JumpEvery > 0 && i%a.JumpEvery == 0 {
		in.Press(core.KeyUp)
	} else {
		in.Release(core.KeyUp)
	}
}

// Simulate runs up to frames frames at a fixed step of dt milliseconds
// without drawing anything and returns the final state. It stops early once
// the game is over.
func Simulate(g *Game, frames int, dt float64, pilot Autopilot) core.GameState {
	in := core.NewInputState()
	var surface core.NopSurface

	for i := 0; i < frames; i++ {
		pilot.apply(in, i)
		if !g.Frame(float64(i)*dt, in, surface) {
			break
		}
	}
	return g.State()
}
