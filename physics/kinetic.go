package physics

import (
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Kinetic is the mutable position/velocity pair of a simulated point in normalized space
type Kinetic struct {
	X, Y       float64
	VelX, VelY float64
}

// ApplyForce integrates a per-frame-tuned force into velocity: v = v + f*dt*60
func ApplyForce(k *Kinetic, fx, fy, dt float64) {
	k.VelX += fx * dt * parameter.FrameRateNormalization
	k.VelY += fy * dt * parameter.FrameRateNormalization
}

// Damp scales velocity by retention on both axes
func Damp(k *Kinetic, retention float64) {
	k.VelX *= retention
	k.VelY *= retention
}

// ClampVelocity bounds each velocity axis independently to ±limit
// Returns true if either axis was clamped
func ClampVelocity(k *Kinetic, limit float64) bool {
	vx := vmath.ClampSym(k.VelX, limit)
	vy := vmath.ClampSym(k.VelY, limit)
	clamped := vx != k.VelX || vy != k.VelY
	k.VelX, k.VelY = vx, vy
	return clamped
}

// Integrate advances position: p = p + v*dt
func Integrate(k *Kinetic, dt float64) {
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
}

// ScaleVelocity multiplies both velocity axes (momentum retention)
func ScaleVelocity(k *Kinetic, s float64) {
	k.VelX *= s
	k.VelY *= s
}
