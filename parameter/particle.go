package parameter

import "math"

// Particle Field Density
const (
	// DensityLowCount is the particle count of the low density preset
	DensityLowCount = 40
	// DensityMediumCount is the particle count of the medium density preset
	DensityMediumCount = 80
	// DensityHighCount is the particle count of the high density preset
	DensityHighCount = 150

	// MinParticleCount and MaxParticleCount bound a custom particle count
	MinParticleCount = 1
	MaxParticleCount = 500
)

// SpeedTierMultipliers maps speed tier {0,1,2} to the integrator speed multiplier
var SpeedTierMultipliers = [3]float64{1.5, 3.0, 4.5}

// SensitivityTierGains maps parallax sensitivity tier {0,1,2} to the parallax force gain
var SensitivityTierGains = [3]float64{0.5, 1.0, 2.0}

// Per-particle attributes drawn once at creation
const (
	ParticleSizeMin  = 1.0
	ParticleSizeMax  = 4.0
	ParticleSpeedMin = 0.5
	ParticleSpeedMax = 1.5
	ParticleAlphaMin = 0.2
	ParticleAlphaMax = 0.8
	ParticlePhaseMax = 2 * math.Pi
)

// Integrator constants, force values are tuned per 60 FPS frame
const (
	// ParticleDriftForce is the baseline upward force per unit speed
	ParticleDriftForce = -0.01

	// ParallaxForceX is the horizontal gain applied to the roll delta
	ParallaxForceX = 350.0
	// ParallaxForceY is the vertical gain applied to the pitch delta
	ParallaxForceY = 50.0

	// RotationDeltaClamp bounds the per-tick rotation delta on each axis (degrees)
	RotationDeltaClamp = 0.1

	// VelocityDamping is the per-tick velocity retention factor
	VelocityDamping = 0.92

	// VelocityClampPerMultiplier bounds each velocity axis to ±N * speed multiplier
	VelocityClampPerMultiplier = 15.0

	// WrapMin and WrapMax define the overscan band in normalized coordinates
	WrapMin = -0.1
	WrapMax = 1.1

	// WrapMomentumRetention scales velocity on vertical re-entry
	WrapMomentumRetention = 0.5
)

// Pre-heat seeding so the field never starts at rest
const (
	// PreheatDriftVelocity is the steady-state upward velocity per unit speed and multiplier
	PreheatDriftVelocity = -0.115
	// PreheatLateralVelocity is the maximum lateral velocity per multiplier
	PreheatLateralVelocity = 0.05
)

// Star mode twinkle
const (
	TwinkleBase      = 0.55
	TwinkleAmplitude = 0.45
	TwinkleRate      = 2.0
)
