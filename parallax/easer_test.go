package parallax

import (
	"math"
	"testing"
)

func TestEaserConvergesToTarget(t *testing.T) {
	e := NewEaser()
	var x, y float64
	for i := 0; i < 600; i++ {
		x, y = e.Step(2.0, -1.0, 1.0/60.0)
	}
	if x != 2.0 || y != -1.0 {
		t.Errorf("eased value = (%v, %v), want settled (2, -1)", x, y)
	}
}

func TestEaserSmoothsStep(t *testing.T) {
	e := NewEaser()
	x, _ := e.Step(1.0, 0, 1.0/60.0)
	if x <= 0 || x >= 1.0 {
		t.Errorf("first eased step = %v, want strictly between 0 and target", x)
	}
}

func TestEaserIgnoresBadDelta(t *testing.T) {
	e := NewEaser()
	e.Step(1.0, 1.0, 1.0/60.0)
	x0, y0 := e.Value()

	for _, dt := range []float64{0, -1, math.NaN()} {
		if x, y := e.Step(5, 5, dt); x != x0 || y != y0 {
			t.Errorf("Step with dt=%v moved value to (%v, %v)", dt, x, y)
		}
	}

	e.Reset()
	if x, y := e.Value(); x != 0 || y != 0 {
		t.Errorf("value after Reset = (%v, %v), want (0,0)", x, y)
	}
}
