// Package parallax turns raw device orientation into a calibrated, smoothed
// tilt signal for the particle integrator.
//
// Data flows Sensor → Tracker.Push → Filter (low-pass + calibration) →
// Tracker.Output → Easer.Step → integrator. The tracker is the only type
// shared between goroutines.
package parallax

import "github.com/lixenwraith/stardrift/parameter"

// Phase is the calibration state of a Filter
type Phase int

const (
	PhaseUncalibrated Phase = iota
	PhaseCalibrating
	PhaseCalibrated
)

func (p Phase) String() string {
	names := [...]string{"uncalibrated", "calibrating", "calibrated"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// Sample is one raw orientation reading in degrees
type Sample struct {
	Pitch float64
	Roll  float64
}

// Filter low-passes raw samples and subtracts a baseline averaged from the first samples
// Not safe for concurrent use, see Tracker
type Filter struct {
	phase Phase

	filtered Sample
	primed   bool // filtered holds at least one sample

	sum      Sample
	count    int
	baseline Sample
}

// NewFilter returns an uncalibrated filter
func NewFilter() *Filter {
	return &Filter{}
}

// Reset returns to Uncalibrated and clears the baseline and filter memory
func (f *Filter) Reset() {
	*f = Filter{}
}

// Phase returns the calibration state
func (f *Filter) Phase() Phase {
	return f.phase
}

// Baseline returns the calibrated resting orientation, zero until calibrated
func (f *Filter) Baseline() Sample {
	return f.baseline
}

// Filtered returns the current low-passed orientation
func (f *Filter) Filtered() Sample {
	return f.filtered
}

// Push feeds one raw sample, returns true on the sample that completes calibration
func (f *Filter) Push(raw Sample) bool {
	if !f.primed {
		f.filtered = raw
		f.primed = true
	} else {
		a := parameter.RotationFilterAlpha
		f.filtered.Pitch = a*f.filtered.Pitch + (1-a)*raw.Pitch
		f.filtered.Roll = a*f.filtered.Roll + (1-a)*raw.Roll
	}

	switch f.phase {
	case PhaseUncalibrated:
		f.phase = PhaseCalibrating
		fallthrough
	case PhaseCalibrating:
		f.sum.Pitch += f.filtered.Pitch
		f.sum.Roll += f.filtered.Roll
		f.count++
		if f.count == parameter.CalibrationSamples {
			f.baseline = Sample{
				Pitch: f.sum.Pitch / parameter.CalibrationSamples,
				Roll:  f.sum.Roll / parameter.CalibrationSamples,
			}
			f.phase = PhaseCalibrated
			return true
		}
	}
	return false
}

// Output returns the calibrated signal (x from pitch, y from roll), zero before calibration
func (f *Filter) Output() (x, y float64) {
	if f.phase != PhaseCalibrated {
		return 0, 0
	}
	x = (f.filtered.Pitch - f.baseline.Pitch) * parameter.RotationOutputGain
	y = (f.filtered.Roll - f.baseline.Roll) * parameter.RotationOutputGain
	return x, y
}
