// Package celestial places a decorative sun or moon sprite from the time of day.
//
// The mapping is a piecewise function over six contiguous windows covering the
// full 24h clock. Transition windows hold the sprite at an anchor and fade its
// alpha; the day and night windows sweep it left to right along a sine arc.
// Window boundaries are not smoothed: the moon leaves the right anchor at 20:00
// and reappears at the left, and progress restarts at 0 in every window.
package celestial

import (
	"math"
	"time"

	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Kind selects the sprite drawn for a body
type Kind int

const (
	KindSun Kind = iota
	KindMoon
)

func (k Kind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// Window names the time range a body position was derived from
type Window int

const (
	WindowSunrise Window = iota
	WindowDay
	WindowSunset
	WindowMoonrise
	WindowNight
	WindowMoonset
)

func (w Window) String() string {
	names := [...]string{"sunrise", "day", "sunset", "moonrise", "night", "moonset"}
	if w >= 0 && int(w) < len(names) {
		return names[w]
	}
	return "unknown"
}

// Body is a transient sun or moon placement in screen units
type Body struct {
	Kind     Kind
	Window   Window
	X, Y     float64
	Size     float64
	Alpha    float64
	Progress float64 // position within the window, [0,1)
}

// DecimalHours converts a wall time to hour + minute/60
func DecimalHours(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0
}

// At places the body for wall time t shifted by offsetHours
func At(t time.Time, offsetHours, width, height float64) (Body, bool) {
	return Position(DecimalHours(t), offsetHours, width, height)
}

// Position maps decimal hours (plus a developer offset) to a body placement
// ok is false only when the adjusted time falls outside every window, which
// requires non-finite input since the windows cover [0,24)
func Position(hours, offsetHours, width, height float64) (b Body, ok bool) {
	t := vmath.WrapHours(hours+offsetHours, parameter.HoursPerDay)

	left := width * parameter.CelestialLeftAnchor
	right := width * parameter.CelestialRightAnchor
	horizon := height * parameter.CelestialHorizonY
	peak := height * parameter.CelestialPeakY

	switch {
	case t >= parameter.SunriseStart && t < parameter.DayStart:
		p := (t - parameter.SunriseStart) / (parameter.DayStart - parameter.SunriseStart)
		b = anchored(KindSun, WindowSunrise, left, horizon, parameter.SunAlpha*p, p)

	case t >= parameter.DayStart && t < parameter.SunsetStart:
		p := (t - parameter.DayStart) / (parameter.SunsetStart - parameter.DayStart)
		b = arc(KindSun, WindowDay, left, right, horizon, peak, parameter.SunAlpha, p)

	case t >= parameter.SunsetStart && t < parameter.MoonriseStart:
		p := (t - parameter.SunsetStart) / (parameter.MoonriseStart - parameter.SunsetStart)
		b = anchored(KindSun, WindowSunset, right, horizon, parameter.SunAlpha*(1-p), p)

	case t >= parameter.MoonriseStart && t < parameter.NightStart:
		p := (t - parameter.MoonriseStart) / (parameter.NightStart - parameter.MoonriseStart)
		b = anchored(KindMoon, WindowMoonrise, right, horizon, parameter.MoonAlpha*p, p)

	case t >= parameter.NightStart || t < parameter.MoonsetStart:
		// Hours since 20:00, wrapping through midnight
		n := t - parameter.NightStart
		if t < parameter.MoonsetStart {
			n = t + parameter.HoursPerDay - parameter.NightStart
		}
		p := n / parameter.NightDuration
		b = arc(KindMoon, WindowNight, left, right, horizon, peak, parameter.MoonAlpha, p)

	case t >= parameter.MoonsetStart && t < parameter.SunriseStart:
		p := (t - parameter.MoonsetStart) / (parameter.SunriseStart - parameter.MoonsetStart)
		b = anchored(KindMoon, WindowMoonset, left, horizon, parameter.MoonAlpha*(1-p), p)

	default:
		core.Logger().Warn("celestial time outside every window", "hours", hours, "offset", offsetHours, "adjusted", t)
		return Body{}, false
	}

	return b, true
}

func sizeOf(k Kind) float64 {
	if k == KindSun {
		return parameter.SunSize
	}
	return parameter.MoonSize
}

func anchored(k Kind, w Window, x, y, alpha, p float64) Body {
	return Body{Kind: k, Window: w, X: x, Y: y, Size: sizeOf(k), Alpha: alpha, Progress: p}
}

// arc sweeps x left to right and lifts y from the horizon to the peak at mid-window
func arc(k Kind, w Window, left, right, horizon, peak, alpha, p float64) Body {
	x := vmath.Lerp(left, right, p)
	y := horizon - (horizon-peak)*math.Sin(p*math.Pi)
	return Body{Kind: k, Window: w, X: x, Y: y, Size: sizeOf(k), Alpha: alpha, Progress: p}
}
