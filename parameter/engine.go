package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the default rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// NominalFrameDelta is the delta in seconds substituted on the first tick after (re)start
	NominalFrameDelta = 1.0 / 60.0

	// MaxFrameDelta caps the per-tick delta in seconds so stalls and backgrounding never produce a jump
	MaxFrameDelta = 0.1

	// FrameRateNormalization converts force constants tuned per 60 FPS frame into per-second terms
	FrameRateNormalization = 60.0

	// MinFPS and MaxFPS bound the configurable demo frame rate
	MinFPS     = 10
	MaxFPS     = 240
	DefaultFPS = 60
)

// Developer time offset bounds (hours)
const (
	MinTimeOffsetHours = -24.0
	MaxTimeOffsetHours = 24.0

	// TimeOffsetStep is the developer key increment
	TimeOffsetStep = 0.5
)

// Headless snapshot defaults
const (
	SnapshotWidth  = 960
	SnapshotHeight = 540
	SnapshotFrames = 120
)
