package engine

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/stardrift/celestial"
	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/parallax"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/particle"
	"github.com/lixenwraith/stardrift/status"
	"github.com/lixenwraith/stardrift/vmath"
)

// Animator owns the particle field and turns frame timestamps into render states
// Frame is driven by one goroutine; SetConfig and SetViewport may be called from any goroutine
type Animator struct {
	mu sync.Mutex

	cfg      config.Config
	fieldKey config.FieldKey
	field    *particle.Field
	rng      *vmath.FastRand

	tracker *parallax.Tracker
	easer   *parallax.Easer
	clock   FrameClock
	time    TimeProvider

	width, height float64
	elapsed       float64
	frames        uint64

	out []Sprite

	stats        *status.Registry
	statFrames   *atomic.Int64
	statRebuilds *atomic.Int64
	statDelta    *status.AtomicFloat
	statMaxDelta *status.AtomicFloat
}

// AnimatorOption configures an Animator at construction
type AnimatorOption func(*Animator)

// WithSeed makes particle creation and re-entry deterministic
func WithSeed(seed uint64) AnimatorOption {
	return func(a *Animator) {
		a.rng = vmath.NewFastRand(seed)
	}
}

// WithTimeProvider replaces the wall clock used for celestial placement
func WithTimeProvider(tp TimeProvider) AnimatorOption {
	return func(a *Animator) {
		if tp != nil {
			a.time = tp
		}
	}
}

// WithViewport sets the celestial coordinate space, the default is the unit square
func WithViewport(width, height float64) AnimatorOption {
	return func(a *Animator) {
		a.width, a.height = width, height
	}
}

// WithStatus publishes frame metrics into an existing registry
func WithStatus(reg *status.Registry) AnimatorOption {
	return func(a *Animator) {
		if reg != nil {
			a.stats = reg
		}
	}
}

// NewAnimator normalizes cfg and builds the initial field
func NewAnimator(cfg config.Config, opts ...AnimatorOption) *Animator {
	cfg.Normalize()
	a := &Animator{
		cfg:     cfg,
		rng:     vmath.NewFastRand(1),
		tracker: parallax.NewTracker(cfg.Parallax),
		easer:   parallax.NewEaser(),
		time:    NewRealTimeProvider(),
		width:   1,
		height:  1,
		stats:   status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.statFrames = a.stats.Ints.Get("engine.frames")
	a.statRebuilds = a.stats.Ints.Get("engine.field_rebuilds")
	a.statDelta = a.stats.Floats.Get("engine.delta")
	a.statMaxDelta = a.stats.Floats.Get("engine.delta_max")
	a.rebuildField()
	return a
}

// rebuildField replaces the arena, caller holds mu or owns a
func (a *Animator) rebuildField() {
	a.fieldKey = a.cfg.FieldKey()
	a.field = particle.NewField(a.fieldKey.Count, a.cfg.SpeedMultiplier(), a.rng)
	a.out = make([]Sprite, 0, a.field.Len())
	a.statRebuilds.Add(1)
	core.Logger().Debug("particle field created",
		"count", a.fieldKey.Count,
		"speed_tier", a.fieldKey.SpeedTier,
		"sensitivity_tier", a.fieldKey.SensitivityTier,
	)
}

// SetConfig applies a new configuration
// The field is recreated only when count, speed tier or sensitivity tier change
// Disabling parallax zeroes the rotation signal before the next frame
func (a *Animator) SetConfig(cfg config.Config) {
	cfg.Normalize()

	a.mu.Lock()
	defer a.mu.Unlock()

	prev := a.cfg
	a.cfg = cfg

	if cfg.Parallax != prev.Parallax {
		if cfg.Parallax {
			a.tracker.Enable()
		} else {
			a.tracker.Disable()
			a.easer.Reset()
		}
	}
	if cfg.FieldKey() != a.fieldKey {
		a.rebuildField()
	}
}

// Config returns the active configuration
func (a *Animator) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// SetViewport changes the celestial coordinate space
func (a *Animator) SetViewport(width, height float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = width, height
}

// Tracker returns the rotation tracker a sensor feeds
func (a *Animator) Tracker() *parallax.Tracker {
	return a.tracker
}

// Field returns the current particle field
func (a *Animator) Field() *particle.Field {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.field
}

// Status returns the metrics registry
func (a *Animator) Status() *status.Registry {
	return a.stats
}

// Reset forgets frame history and eased rotation so a restarted loop begins with a nominal tick
func (a *Animator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clock.Reset()
	a.easer.Reset()
}

// Frame advances the animation to timestamp nanos and returns the state to draw
// The tracker is read before the field is stepped
func (a *Animator) Frame(nanos int64) RenderState {
	a.mu.Lock()
	defer a.mu.Unlock()

	dt := a.clock.Advance(nanos)
	a.elapsed += dt
	a.frames++
	a.statFrames.Add(1)
	a.statDelta.Set(dt)
	a.statMaxDelta.Max(dt)

	tx, ty := 0.0, 0.0
	if a.cfg.Parallax {
		tx, ty = a.tracker.Output()
	}
	rx, ry := a.easer.Step(tx, ty, dt)

	a.field.Step(particle.StepInput{
		SpeedMultiplier: a.cfg.SpeedMultiplier(),
		RotationX:       rx,
		RotationY:       ry,
		DeltaTime:       dt,
		Sensitivity:     a.cfg.Sensitivity(),
	})

	state := RenderState{
		Frame:    a.frames,
		Delta:    dt,
		StarMode: a.cfg.StarMode,
		Parallax: a.cfg.Parallax,
		Rotation: [2]float64{rx, ry},
	}
	state.Particles = a.project(a.field.Particles())

	if a.cfg.TimeMode {
		now := a.time.Now()
		hours := vmath.WrapHours(celestial.DecimalHours(now)+a.cfg.TimeOffsetHours, parameter.HoursPerDay)
		hour := int(hours)
		state.SunHour = celestial.IsSunHour(hour)
		state.Daytime = celestial.IsDaytime(hour)
		if b, ok := celestial.At(now, a.cfg.TimeOffsetHours, a.width, a.height); ok {
			state.Celestial = &b
		}
	}

	return state
}

// project writes particles into the reusable output buffer
func (a *Animator) project(ps []particle.Particle) []Sprite {
	out := a.out[:0]
	for i := range ps {
		p := &ps[i]
		alpha := p.Alpha
		if a.cfg.StarMode {
			alpha *= parameter.TwinkleBase + parameter.TwinkleAmplitude*math.Sin(p.Phase+parameter.TwinkleRate*a.elapsed*p.Speed)
		}
		out = append(out, Sprite{X: p.X, Y: p.Y, Size: p.Size, Alpha: alpha})
	}
	a.out = out
	return out
}
