package tui

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// HoldTracker synthesizes key releases for terminals, which only report
// presses (and their auto-repeats). A key is released once no press for it
// has been seen for the hold window.
type HoldTracker struct {
	input    *core.InputState
	window   time.Duration
	lastSeen map[core.Key]time.Time
}

// NewHoldTracker creates a tracker feeding the given input state.
// A non-positive window falls back to core.DefaultHoldWindow.
func NewHoldTracker(input *core.InputState, window time.Duration) *HoldTracker {
	if window <= 0 {
		window = core.DefaultHoldWindow
	}
	return &HoldTracker{
		input:    input,
		window:   window,
		lastSeen: make(map[core.Key]time.Time),
	}
}

// Press records a press (or repeat) of k at now.
func (h *HoldTracker) Press(k core.Key, now time.Time) {
	if !k.Valid() {
		return
	}
	h.lastSeen[k] = now
	h.input.Press(k)
}

// Expire releases every key whose last press is older than the hold window.
func (h *HoldTracker) Expire(now time.Time) {
	for k, seen := range h.lastSeen {
		if now.Sub(seen) > h.window {
			delete(h.lastSeen, k)
			h.input.Release(k)
		}
	}
}

// Window returns the hold window in use.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}
