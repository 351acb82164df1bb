package config

import (
	"math"
	"testing"

	"github.com/lixenwraith/stardrift/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.ParticleCount() != parameter.DensityMediumCount {
		t.Errorf("default particle count = %d, want %d", cfg.ParticleCount(), parameter.DensityMediumCount)
	}
	if cfg.SpeedMultiplier() != 3.0 {
		t.Errorf("default speed multiplier = %v, want 3.0", cfg.SpeedMultiplier())
	}
}

func TestParticleCount(t *testing.T) {
	tests := []struct {
		name     string
		density  Density
		custom   int
		expected int
	}{
		{"low", DensityLow, 0, parameter.DensityLowCount},
		{"medium", DensityMedium, 0, parameter.DensityMediumCount},
		{"high", DensityHigh, 0, parameter.DensityHighCount},
		{"custom", DensityCustom, 250, 250},
		{"custom over", DensityCustom, 700, 500},
		{"custom zero", DensityCustom, 0, 1},
		{"custom negative", DensityCustom, -3, 1},
		{"unknown falls back", Density("dense"), 0, parameter.DensityMediumCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Density = tt.density
			cfg.CustomCount = tt.custom
			if got := cfg.ParticleCount(); got != tt.expected {
				t.Errorf("ParticleCount() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestTierMapping(t *testing.T) {
	tests := []struct {
		tier        int
		speed       float64
		sensitivity float64
	}{
		{0, 1.5, 0.5},
		{1, 3.0, 1.0},
		{2, 4.5, 2.0},
		{-1, 1.5, 0.5},
		{9, 4.5, 2.0},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.SpeedTier = tt.tier
		cfg.SensitivityTier = tt.tier
		if got := cfg.SpeedMultiplier(); got != tt.speed {
			t.Errorf("tier %d: SpeedMultiplier() = %v, want %v", tt.tier, got, tt.speed)
		}
		if got := cfg.Sensitivity(); got != tt.sensitivity {
			t.Errorf("tier %d: Sensitivity() = %v, want %v", tt.tier, got, tt.sensitivity)
		}
	}
}

func TestSensitivityZeroWhenParallaxOff(t *testing.T) {
	cfg := Default()
	cfg.SensitivityTier = 2
	cfg.Parallax = false
	if got := cfg.Sensitivity(); got != 0 {
		t.Errorf("Sensitivity() with parallax off = %v, want 0", got)
	}
}

func TestFieldKey(t *testing.T) {
	a := Default()
	b := a
	b.StarMode = !a.StarMode
	b.TimeOffsetHours = 3
	b.Parallax = !a.Parallax
	if a.FieldKey() != b.FieldKey() {
		t.Error("presentation-only changes altered the field key")
	}

	c := a
	c.SpeedTier = 2
	if a.FieldKey() == c.FieldKey() {
		t.Error("speed tier change kept the same field key")
	}

	d := a
	d.Density = DensityHigh
	if a.FieldKey() == d.FieldKey() {
		t.Error("density change kept the same field key")
	}
}

func TestValidateAndNormalize(t *testing.T) {
	cfg := Config{
		Density:         "huge",
		CustomCount:     900,
		SpeedTier:       7,
		SensitivityTier: -2,
		TimeOffsetHours: math.NaN(),
		FPS:             1000,
		Theme:           Theme{Particle: "not-a-color", Background: "#00FF00"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() = nil, want errors")
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() after Normalize = %v", err)
	}
	if cfg.Density != DensityMedium {
		t.Errorf("Density = %q, want medium", cfg.Density)
	}
	if cfg.CustomCount != 500 || cfg.SpeedTier != 2 || cfg.SensitivityTier != 0 {
		t.Errorf("clamped = (%d, %d, %d), want (500, 2, 0)", cfg.CustomCount, cfg.SpeedTier, cfg.SensitivityTier)
	}
	if cfg.TimeOffsetHours != 0 {
		t.Errorf("TimeOffsetHours = %v, want 0", cfg.TimeOffsetHours)
	}
	if cfg.FPS != parameter.MaxFPS {
		t.Errorf("FPS = %d, want %d", cfg.FPS, parameter.MaxFPS)
	}
	if cfg.Theme.Particle != DefaultParticleColor || cfg.Theme.Background != "#00FF00" {
		t.Errorf("Theme = %+v, want bad particle color replaced only", cfg.Theme)
	}
}

func TestNextDensity(t *testing.T) {
	tests := []struct {
		in, expected Density
	}{
		{DensityLow, DensityMedium},
		{DensityMedium, DensityHigh},
		{DensityHigh, DensityCustom},
		{DensityCustom, DensityLow},
		{Density("x"), DensityMedium},
	}

	for _, tt := range tests {
		if got := NextDensity(tt.in); got != tt.expected {
			t.Errorf("NextDensity(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
