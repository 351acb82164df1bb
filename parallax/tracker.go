package parallax

import (
	"math"
	"sync"

	"github.com/lixenwraith/stardrift/core"
)

// Tracker guards a Filter shared between the sensor producer and the frame consumer
// A disabled tracker drops samples and reports (0,0)
type Tracker struct {
	mu      sync.Mutex
	filter  Filter
	enabled bool
	samples uint64
}

// NewTracker returns a tracker, enabled starts calibration immediately
func NewTracker(enabled bool) *Tracker {
	return &Tracker{enabled: enabled}
}

// Enable resets calibration and starts accepting samples
// Calling Enable on an enabled tracker recalibrates
func (t *Tracker) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filter.Reset()
	t.enabled = true
}

// Disable zeroes the signal synchronously, the next Output returns (0,0)
func (t *Tracker) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filter.Reset()
	t.enabled = false
}

// Enabled reports whether samples are accepted
func (t *Tracker) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// Push feeds a raw sample; non-finite readings are dropped
func (t *Tracker) Push(s Sample) {
	if math.IsNaN(s.Pitch) || math.IsNaN(s.Roll) || math.IsInf(s.Pitch, 0) || math.IsInf(s.Roll, 0) {
		return
	}

	t.mu.Lock()
	if !t.enabled {
		t.mu.Unlock()
		return
	}
	t.samples++
	done := t.filter.Push(s)
	baseline := t.filter.baseline
	t.mu.Unlock()

	if done {
		core.Logger().Debug("parallax calibrated", "pitch", baseline.Pitch, "roll", baseline.Roll)
	}
}

// Output returns the calibrated signal, (0,0) while disabled or calibrating
func (t *Tracker) Output() (x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return 0, 0
	}
	return t.filter.Output()
}

// Phase returns the calibration state of the underlying filter
func (t *Tracker) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filter.phase
}

// Samples returns the number of accepted samples since creation
func (t *Tracker) Samples() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.samples
}
