package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/stardrift/celestial"
	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/parallax"
	"github.com/lixenwraith/stardrift/parameter"
)

const tick = int64(16 * time.Millisecond)

func newTestAnimator(t *testing.T, cfg config.Config, hour, minute int) (*Animator, *MockTimeProvider) {
	t.Helper()
	mock := NewMockTimeProvider(time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC))
	a := NewAnimator(cfg, WithSeed(42), WithTimeProvider(mock), WithViewport(100, 100))
	return a, mock
}

func TestAnimatorParticleCount(t *testing.T) {
	cfg := config.Default()
	cfg.Density = config.DensityCustom
	cfg.CustomCount = 700

	a, _ := newTestAnimator(t, cfg, 12, 0)
	if n := a.Field().Len(); n != parameter.MaxParticleCount {
		t.Errorf("custom 700 -> %d particles, want %d", n, parameter.MaxParticleCount)
	}

	state := a.Frame(0)
	if len(state.Particles) != parameter.MaxParticleCount {
		t.Errorf("render state carries %d sprites", len(state.Particles))
	}
}

func TestAnimatorFieldRecreatedOnlyOnKeyChange(t *testing.T) {
	a, _ := newTestAnimator(t, config.Default(), 12, 0)
	original := a.Field()

	cfg := a.Config()
	cfg.StarMode = true
	cfg.TimeMode = false
	cfg.Theme.OLED = true
	a.SetConfig(cfg)
	if a.Field() != original {
		t.Error("cosmetic change must keep the field")
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"density", func(c *config.Config) { c.Density = config.DensityHigh }},
		{"speed tier", func(c *config.Config) { c.SpeedTier = 2 }},
		{"sensitivity tier", func(c *config.Config) { c.SensitivityTier = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := a.Field()
			cfg := a.Config()
			tt.mutate(&cfg)
			a.SetConfig(cfg)
			if a.Field() == before {
				t.Errorf("%s change must recreate the field", tt.name)
			}
		})
	}
}

func TestAnimatorDisableParallaxZeroesNextTick(t *testing.T) {
	a, _ := newTestAnimator(t, config.Default(), 12, 0)
	tr := a.Tracker()

	for i := 0; i < parameter.CalibrationSamples; i++ {
		tr.Push(parallax.Sample{})
	}
	if tr.Phase() != parallax.PhaseCalibrated {
		t.Fatalf("phase = %v, want calibrated", tr.Phase())
	}
	for i := 0; i < 5; i++ {
		tr.Push(parallax.Sample{Pitch: 20, Roll: -20})
	}

	var state RenderState
	for i := int64(0); i < 10; i++ {
		state = a.Frame(i * tick)
	}
	if state.Rotation[0] == 0 && state.Rotation[1] == 0 {
		t.Fatal("expected non-zero eased rotation while parallax is on")
	}

	cfg := a.Config()
	cfg.Parallax = false
	a.SetConfig(cfg)

	state = a.Frame(10 * tick)
	if state.Rotation != [2]float64{} {
		t.Errorf("rotation after disable = %v, want (0,0)", state.Rotation)
	}
	if state.Parallax {
		t.Error("state should report parallax off")
	}
}

func TestAnimatorCelestial(t *testing.T) {
	t.Run("midday sun", func(t *testing.T) {
		a, _ := newTestAnimator(t, config.Default(), 12, 30)
		state := a.Frame(0)
		if state.Celestial == nil {
			t.Fatal("expected a body at 12:30")
		}
		if state.Celestial.Kind != celestial.KindSun || state.Celestial.Window != celestial.WindowDay {
			t.Errorf("body = %v/%v, want sun/day", state.Celestial.Kind, state.Celestial.Window)
		}
		if !state.SunHour || !state.Daytime {
			t.Errorf("SunHour=%v Daytime=%v at 12:30", state.SunHour, state.Daytime)
		}
	})

	t.Run("night moon with offset", func(t *testing.T) {
		cfg := config.Default()
		cfg.TimeOffsetHours = 11 // 12:30 -> 23:30
		a, _ := newTestAnimator(t, cfg, 12, 30)
		state := a.Frame(0)
		if state.Celestial == nil || state.Celestial.Kind != celestial.KindMoon {
			t.Fatalf("expected moon, got %+v", state.Celestial)
		}
		if state.SunHour || state.Daytime {
			t.Error("23:30 is neither sun hour nor daytime")
		}
	})

	t.Run("follows the clock", func(t *testing.T) {
		a, mock := newTestAnimator(t, config.Default(), 6, 30)
		if s := a.Frame(0); !s.SunHour || s.Daytime {
			t.Errorf("06:30 SunHour=%v Daytime=%v, want true/false", s.SunHour, s.Daytime)
		}
		mock.SetClock(21, 0)
		if s := a.Frame(tick); s.Celestial == nil || s.Celestial.Window != celestial.WindowNight {
			t.Errorf("21:00 body = %+v, want night", s.Celestial)
		}
	})

	t.Run("time mode off", func(t *testing.T) {
		cfg := config.Default()
		cfg.TimeMode = false
		a, _ := newTestAnimator(t, cfg, 12, 30)
		if s := a.Frame(0); s.Celestial != nil {
			t.Errorf("celestial = %+v, want nil", s.Celestial)
		}
	})
}

func TestAnimatorStarModeTwinkle(t *testing.T) {
	cfg := config.Default()
	cfg.StarMode = true
	a, _ := newTestAnimator(t, cfg, 12, 0)

	low := parameter.TwinkleBase - parameter.TwinkleAmplitude
	for f := int64(0); f < 60; f++ {
		state := a.Frame(f * tick)
		ps := a.Field().Particles()
		for i, s := range state.Particles {
			base := ps[i].Alpha
			if s.Alpha > base+1e-12 || s.Alpha < base*low-1e-12 {
				t.Fatalf("frame %d sprite %d alpha %v outside [%v,%v]", f, i, s.Alpha, base*low, base)
			}
		}
	}
}

func TestAnimatorDeterministicSeed(t *testing.T) {
	a1, _ := newTestAnimator(t, config.Default(), 12, 0)
	a2, _ := newTestAnimator(t, config.Default(), 12, 0)

	var s1, s2 RenderState
	for f := int64(0); f < 120; f++ {
		s1 = a1.Frame(f * tick)
		s2 = a2.Frame(f * tick)
	}
	for i := range s1.Particles {
		if s1.Particles[i] != s2.Particles[i] {
			t.Fatalf("sprite %d diverged: %+v vs %+v", i, s1.Particles[i], s2.Particles[i])
		}
	}
}

func TestAnimatorReset(t *testing.T) {
	a, _ := newTestAnimator(t, config.Default(), 12, 0)
	a.Frame(0)
	a.Frame(tick)

	a.Reset()
	state := a.Frame(int64(time.Hour))
	if state.Delta != parameter.NominalFrameDelta {
		t.Errorf("delta after reset = %v, want nominal", state.Delta)
	}
	if state.Frame != 3 {
		t.Errorf("frame counter = %d, want 3", state.Frame)
	}
}

func TestAnimatorParticlesStayInBand(t *testing.T) {
	cfg := config.Default()
	cfg.SpeedTier = 2
	cfg.SensitivityTier = 2
	a, _ := newTestAnimator(t, cfg, 12, 0)
	tr := a.Tracker()

	for f := int64(0); f < 600; f++ {
		tr.Push(parallax.Sample{Pitch: float64(f%40) - 20, Roll: float64(f%25) - 12})
		state := a.Frame(f * tick)
		for i, s := range state.Particles {
			if s.X < parameter.WrapMin || s.X > parameter.WrapMax || s.Y < parameter.WrapMin || s.Y > parameter.WrapMax {
				t.Fatalf("frame %d sprite %d out of band: (%v,%v)", f, i, s.X, s.Y)
			}
		}
	}
}

func TestAnimatorStatus(t *testing.T) {
	a, _ := newTestAnimator(t, config.Default(), 12, 0)
	for f := int64(0); f < 5; f++ {
		a.Frame(f * tick)
	}
	cfg := a.Config()
	cfg.SpeedTier = 0
	a.SetConfig(cfg)

	reg := a.Status()
	if got := reg.Ints.Get("engine.frames").Load(); got != 5 {
		t.Errorf("engine.frames = %d, want 5", got)
	}
	if got := reg.Ints.Get("engine.field_rebuilds").Load(); got != 2 {
		t.Errorf("engine.field_rebuilds = %d, want 2", got)
	}
	if got := reg.Floats.Get("engine.delta_max").Get(); got != parameter.NominalFrameDelta {
		t.Errorf("engine.delta_max = %v, want nominal first tick", got)
	}
}
