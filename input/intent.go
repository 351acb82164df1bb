package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit     // q, Ctrl+C
	IntentPause    // space, stops/starts the frame loop
	IntentSnapshot // Ctrl+S, writes the current frame to PNG

	// Settings
	IntentToggleParallax
	IntentCycleSpeed
	IntentCycleSensitivity
	IntentCycleDensity
	IntentToggleTime
	IntentToggleStars
	IntentToggleOLED
	IntentToggleHaptics

	// Developer time offset
	IntentOffsetBack
	IntentOffsetForward

	// Manual sensor
	IntentTiltUp
	IntentTiltDown
	IntentTiltLeft
	IntentTiltRight
	IntentLevel
	IntentToggleWobble

	intentCount
)

var intentNames = [intentCount]string{
	"none",
	"quit", "pause", "snapshot",
	"toggle_parallax", "cycle_speed", "cycle_sensitivity", "cycle_density",
	"toggle_time", "toggle_stars", "toggle_oled", "toggle_haptics",
	"offset_back", "offset_forward",
	"tilt_up", "tilt_down", "tilt_left", "tilt_right", "level", "toggle_wobble",
}

// String returns the action name used in keymap files
func (i IntentType) String() string {
	if i >= intentCount {
		return "unknown"
	}
	return intentNames[i]
}
