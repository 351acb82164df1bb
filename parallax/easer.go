package parallax

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/stardrift/parameter"
)

// Easer springs the tracker output toward its target each frame
// The spring is rebuilt when the frame delta changes, harmonica bakes dt into its coefficients
type Easer struct {
	spring harmonica.Spring
	dt     float64

	x, vx float64
	y, vy float64
}

// NewEaser returns an easer resting at (0,0)
func NewEaser() *Easer {
	return &Easer{}
}

// Reset snaps the eased value and its velocity to zero
func (e *Easer) Reset() {
	e.x, e.vx, e.y, e.vy = 0, 0, 0, 0
}

// Value returns the current eased value without advancing
func (e *Easer) Value() (x, y float64) {
	return e.x, e.y
}

// Step advances the spring by dt seconds toward (tx, ty)
func (e *Easer) Step(tx, ty, dt float64) (x, y float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return e.x, e.y
	}
	if dt != e.dt {
		e.spring = harmonica.NewSpring(dt, parameter.EaseFrequency, parameter.EaseDamping)
		e.dt = dt
	}

	e.x, e.vx = e.spring.Update(e.x, e.vx, tx)
	e.y, e.vy = e.spring.Update(e.y, e.vy, ty)

	// Settle so a stopped device reaches exactly zero delta
	if math.Abs(e.x-tx) < parameter.EaseSettle && math.Abs(e.vx) < parameter.EaseSettle {
		e.x, e.vx = tx, 0
	}
	if math.Abs(e.y-ty) < parameter.EaseSettle && math.Abs(e.vy) < parameter.EaseSettle {
		e.y, e.vy = ty, 0
	}
	return e.x, e.y
}
