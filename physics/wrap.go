package physics

// Edge reports which side of the wrap band a coordinate left through
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLow       // left through the minimum, re-entered at the maximum
	EdgeHigh      // left through the maximum, re-entered at the minimum
)

// WrapAxis applies torus topology to a single coordinate over [lo, hi]
// The coordinate re-enters exactly at the opposite bound, never beyond it
func WrapAxis(p *float64, lo, hi float64) Edge {
	if *p < lo {
		*p = hi
		return EdgeLow
	}
	if *p > hi {
		*p = lo
		return EdgeHigh
	}
	return EdgeNone
}
