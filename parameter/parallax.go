package parameter

// Rotation filter and calibration
const (
	// RotationFilterAlpha is the one-pole low-pass retention factor
	RotationFilterAlpha = 0.8

	// CalibrationSamples is the number of filtered samples averaged into the baseline
	CalibrationSamples = 10

	// RotationOutputGain is the fixed linear gain applied after baseline subtraction
	RotationOutputGain = 0.15
)

// Output easing spring
const (
	// EaseFrequency is the angular frequency of the easing spring
	EaseFrequency = 6.0
	// EaseDamping is the damping ratio of the easing spring (1 = critically damped)
	EaseDamping = 1.0
	// EaseSettle snaps the eased value to its target below this distance
	EaseSettle = 1e-4
)

// Synthetic sensor defaults
const (
	WobbleSampleRate = 50   // samples per second
	WobbleAmplitude  = 8.0  // degrees
	WobblePeriod     = 6.0  // seconds per full sway
	ManualNudgeStep  = 2.0  // degrees per key press
	ManualMaxTilt    = 45.0 // degrees
)
