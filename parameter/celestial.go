package parameter

// Celestial window boundaries (decimal hours, local time after offset)
const (
	SunriseStart  = 6.0
	DayStart      = 7.0
	SunsetStart   = 18.0
	MoonriseStart = 19.0
	NightStart    = 20.0
	MoonsetStart  = 5.0
	NightDuration = 9.0 // 20:00 → 05:00
	HoursPerDay   = 24.0
)

// Celestial anchors as fractions of the screen dimensions
const (
	CelestialLeftAnchor  = 0.08
	CelestialRightAnchor = 0.92
	CelestialHorizonY    = 0.30
	CelestialPeakY       = 0.12
)

// Celestial sprite appearance
const (
	SunSize   = 48.0
	MoonSize  = 42.0
	SunAlpha  = 0.75
	MoonAlpha = 0.65
)

// Hour classification thresholds
const (
	// SunHourStart and SunHourEnd classify an hour as sun-rendering time
	SunHourStart = 6
	SunHourEnd   = 19

	// DaytimeHourStart and DaytimeHourEnd classify an hour as daytime for UI copy
	DaytimeHourStart = 7
	DaytimeHourEnd   = 19
)
