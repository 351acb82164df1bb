// Package particle holds the drifting particle field and its per-tick integrator.
package particle

import (
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/physics"
	"github.com/lixenwraith/stardrift/vmath"
)

// Particle is one animated point; Size, Speed, Alpha and Phase are fixed at creation
type Particle struct {
	physics.Kinetic

	Size  float64
	Speed float64
	Alpha float64
	Phase float64

	// Last rotation seen by this particle, used to derive the bounded per-tick delta
	SmoothRotationX float64
	SmoothRotationY float64
}

// StepInput is the per-tick drive shared by every particle of a field
type StepInput struct {
	SpeedMultiplier float64
	RotationX       float64 // eased pitch signal (degrees)
	RotationY       float64 // eased roll signal (degrees)
	DeltaTime       float64 // seconds, clamped to [0, MaxFrameDelta]
	Sensitivity     float64 // parallax gain, 0 when parallax is off
}

// sanitize clamps every input to a usable value; bad input never propagates
func (in StepInput) sanitize() StepInput {
	in.DeltaTime = vmath.Clamp(vmath.Finite(in.DeltaTime, 0), 0, parameter.MaxFrameDelta)
	in.RotationX = vmath.Finite(in.RotationX, 0)
	in.RotationY = vmath.Finite(in.RotationY, 0)
	if m := vmath.Finite(in.SpeedMultiplier, 0); m > 0 {
		in.SpeedMultiplier = m
	} else {
		in.SpeedMultiplier = 0
	}
	if s := vmath.Finite(in.Sensitivity, 0); s > 0 {
		in.Sensitivity = s
	} else {
		in.Sensitivity = 0
	}
	return in
}

// spawn draws immutable attributes and pre-heats velocity so the first frame is already in motion
func spawn(rng *vmath.FastRand, speedMultiplier float64) Particle {
	p := Particle{
		Size:  rng.Range(parameter.ParticleSizeMin, parameter.ParticleSizeMax),
		Speed: rng.Range(parameter.ParticleSpeedMin, parameter.ParticleSpeedMax),
		Alpha: rng.Range(parameter.ParticleAlphaMin, parameter.ParticleAlphaMax),
		Phase: rng.Range(0, parameter.ParticlePhaseMax),
	}
	p.X = rng.Float64()
	p.Y = rng.Float64()
	p.VelX = rng.Signed() * parameter.PreheatLateralVelocity * speedMultiplier
	p.VelY = parameter.PreheatDriftVelocity * p.Speed * speedMultiplier
	return p
}

// Integrate advances one particle by one tick
// rng supplies the re-entry column on vertical wrap
func Integrate(p *Particle, in StepInput, rng *vmath.FastRand) {
	integrate(p, in.sanitize(), rng)
}

func integrate(p *Particle, in StepInput, rng *vmath.FastRand) {
	// Rotation delta since last tick, bounded so physical rotation speed cannot run away
	dRotX := vmath.ClampSym(in.RotationX-p.SmoothRotationX, parameter.RotationDeltaClamp)
	dRotY := vmath.ClampSym(in.RotationY-p.SmoothRotationY, parameter.RotationDeltaClamp)
	p.SmoothRotationX = in.RotationX
	p.SmoothRotationY = in.RotationY

	drive := p.Speed * in.SpeedMultiplier

	forceX := 0.0
	forceY := parameter.ParticleDriftForce * drive

	// Parallax responds to rotation delta only, a still device yields pure drift
	forceX += dRotY * in.Sensitivity * drive * parameter.ParallaxForceX
	forceY += -dRotX * in.Sensitivity * drive * parameter.ParallaxForceY

	physics.ApplyForce(&p.Kinetic, forceX, forceY, in.DeltaTime)
	physics.Damp(&p.Kinetic, parameter.VelocityDamping)
	physics.ClampVelocity(&p.Kinetic, parameter.VelocityClampPerMultiplier*in.SpeedMultiplier)
	physics.Integrate(&p.Kinetic, in.DeltaTime)

	// Vertical is the primary axis: re-enter at a fresh column keeping half the momentum
	if physics.WrapAxis(&p.Y, parameter.WrapMin, parameter.WrapMax) != physics.EdgeNone {
		p.X = rng.Float64()
		physics.ScaleVelocity(&p.Kinetic, parameter.WrapMomentumRetention)
	}
	physics.WrapAxis(&p.X, parameter.WrapMin, parameter.WrapMax)
}
