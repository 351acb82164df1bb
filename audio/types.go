package audio

import "errors"

// ClickKind selects a feedback sound
type ClickKind int

const (
	ClickToggle     ClickKind = iota // Setting switched on/off
	ClickTier                        // Speed, sensitivity or density step
	ClickCalibrated                  // Parallax calibration completed
	ClickEdge                        // Limit reached (max tilt, offset bound)
	clickKindCount
)

var clickNames = [clickKindCount]string{"toggle", "tier", "calibrated", "edge"}

func (k ClickKind) String() string {
	if k < 0 || k >= clickKindCount {
		return "unknown"
	}
	return clickNames[k]
}

// ErrUnknownClick is returned by NewClick for an out-of-range kind
var ErrUnknownClick = errors.New("unknown click kind")
