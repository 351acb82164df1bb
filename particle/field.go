package particle

import (
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Field is a flat arena of particles owned by a single frame goroutine
// A field is never resized; configuration changes build a new one
type Field struct {
	particles []Particle
	rng       *vmath.FastRand
	ticks     uint64
}

// ClampCount bounds a requested particle count to [MinParticleCount, MaxParticleCount]
func ClampCount(n int) int {
	return vmath.ClampInt(n, parameter.MinParticleCount, parameter.MaxParticleCount)
}

// NewField creates count particles (clamped) pre-heated for speedMultiplier
func NewField(count int, speedMultiplier float64, rng *vmath.FastRand) *Field {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	count = ClampCount(count)

	f := &Field{
		particles: make([]Particle, count),
		rng:       rng,
	}
	for i := range f.particles {
		f.particles[i] = spawn(rng, speedMultiplier)
	}
	return f
}

// Len returns the number of particles
func (f *Field) Len() int {
	return len(f.particles)
}

// Ticks returns the number of completed Step calls
func (f *Field) Ticks() uint64 {
	return f.ticks
}

// Particles exposes the arena for read access by the frame owner
func (f *Field) Particles() []Particle {
	return f.particles
}

// Step advances every particle by one tick, particles are independent so order is irrelevant
func (f *Field) Step(in StepInput) {
	in = in.sanitize()
	for i := range f.particles {
		integrate(&f.particles[i], in, f.rng)
	}
	f.ticks++
}
