package runner

import "time"

// Clock turns wall-clock instants into the millisecond frame timestamps the
// game expects. The first call returns 0 so the first frame has dt 0.
type Clock struct {
	start   time.Time
	started bool
}

// Stamp returns milliseconds elapsed since the first call.
func (c *Clock) Stamp(now time.Time) float64 {
	if !c.started {
		c.start = now
		c.started = true
		return 0
	}
	return float64(now.Sub(c.start)) / float64(time.Millisecond)
}
