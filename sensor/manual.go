package sensor

import (
	"sync"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Manual is a keyboard-driven attitude, each Nudge emits the new absolute reading
type Manual struct {
	mu     sync.Mutex
	pitch  float64
	roll   float64
	closed bool

	samples chan Sample
}

// NewManual returns a level manual source
func NewManual() *Manual {
	return &Manual{samples: make(chan Sample, 1)}
}

// Nudge tilts by the given degrees, clamped to ±ManualMaxTilt
func (m *Manual) Nudge(dPitch, dRoll float64) Sample {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pitch = vmath.ClampSym(m.pitch+dPitch, parameter.ManualMaxTilt)
	m.roll = vmath.ClampSym(m.roll+dRoll, parameter.ManualMaxTilt)
	s := Sample{Pitch: m.pitch, Roll: m.roll}
	m.emit(s)
	return s
}

// Level returns to zero tilt
func (m *Manual) Level() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pitch, m.roll = 0, 0
	m.emit(Sample{})
}

// Attitude returns the current tilt
func (m *Manual) Attitude() Sample {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Sample{Pitch: m.pitch, Roll: m.roll}
}

// emit replaces any unread sample with s, caller holds mu
func (m *Manual) emit(s Sample) {
	if m.closed {
		return
	}
	select {
	case <-m.samples:
	default:
	}
	m.samples <- s
}

func (m *Manual) Samples() <-chan Sample { return m.samples }

func (m *Manual) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.samples)
	}
}
