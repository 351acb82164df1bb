package engine

import (
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// FrameClock turns monotonic frame timestamps into a bounded per-tick delta
// The first tick after creation or Reset yields the nominal 1/60s
type FrameClock struct {
	last    int64
	started bool
}

// Advance records a frame timestamp in nanoseconds and returns the delta in seconds
// Deltas are clamped to [0, MaxFrameDelta]; a timestamp going backwards yields 0
func (c *FrameClock) Advance(nanos int64) float64 {
	if !c.started {
		c.started = true
		c.last = nanos
		return parameter.NominalFrameDelta
	}
	dt := float64(nanos-c.last) / 1e9
	c.last = nanos
	return vmath.Clamp(dt, 0, parameter.MaxFrameDelta)
}

// Reset forgets frame history so a restarted loop never sees a stale delta
func (c *FrameClock) Reset() {
	c.last = 0
	c.started = false
}

// Started reports whether at least one frame was recorded since the last reset
func (c *FrameClock) Started() bool {
	return c.started
}
