// Package config holds the plain-data configuration consumed by the animation core.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Density selects a particle count preset
type Density string

const (
	DensityLow    Density = "low"
	DensityMedium Density = "medium"
	DensityHigh   Density = "high"
	DensityCustom Density = "custom"
)

// Densities lists presets in cycling order
var Densities = []Density{DensityLow, DensityMedium, DensityHigh, DensityCustom}

// Tier bounds shared by speed and sensitivity
const (
	MinTier = 0
	MaxTier = 2
)

// Default theme colors
const (
	DefaultParticleColor   = "#E8F1FF"
	DefaultBackgroundColor = "#0B1320"
	DefaultCustomCount     = 120
)

// Theme carries user color customization
type Theme struct {
	Particle   string `toml:"particle"`
	Background string `toml:"background"`
	OLED       bool   `toml:"oled"` // pure black background
}

// Config is passed by value into the animation core, there is no live binding
type Config struct {
	Density         Density `toml:"density"`
	CustomCount     int     `toml:"custom_count"`
	SpeedTier       int     `toml:"speed_tier"`
	Parallax        bool    `toml:"parallax"`
	SensitivityTier int     `toml:"sensitivity_tier"`
	StarMode        bool    `toml:"star_mode"`
	TimeMode        bool    `toml:"time_mode"`
	TimeOffsetHours float64 `toml:"time_offset_hours"`
	Haptics         bool    `toml:"haptics"`
	FPS             int     `toml:"fps"`
	Theme           Theme   `toml:"theme"`
}

// FieldKey is the configuration tuple whose change forces a new particle field
type FieldKey struct {
	Count           int
	SpeedTier       int
	SensitivityTier int
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Density:         DensityMedium,
		CustomCount:     DefaultCustomCount,
		SpeedTier:       1,
		Parallax:        true,
		SensitivityTier: 1,
		StarMode:        false,
		TimeMode:        true,
		TimeOffsetHours: 0,
		Haptics:         true,
		FPS:             parameter.DefaultFPS,
		Theme: Theme{
			Particle:   DefaultParticleColor,
			Background: DefaultBackgroundColor,
		},
	}
}

// Validate reports every field that Normalize would have to repair
func (c Config) Validate() error {
	var errs []error

	switch c.Density {
	case DensityLow, DensityMedium, DensityHigh, DensityCustom:
	default:
		errs = append(errs, fmt.Errorf("density %q: want low, medium, high or custom", c.Density))
	}
	if c.Density == DensityCustom && (c.CustomCount < parameter.MinParticleCount || c.CustomCount > parameter.MaxParticleCount) {
		errs = append(errs, fmt.Errorf("custom_count %d: want [%d,%d]", c.CustomCount, parameter.MinParticleCount, parameter.MaxParticleCount))
	}
	if c.SpeedTier < MinTier || c.SpeedTier > MaxTier {
		errs = append(errs, fmt.Errorf("speed_tier %d: want [%d,%d]", c.SpeedTier, MinTier, MaxTier))
	}
	if c.SensitivityTier < MinTier || c.SensitivityTier > MaxTier {
		errs = append(errs, fmt.Errorf("sensitivity_tier %d: want [%d,%d]", c.SensitivityTier, MinTier, MaxTier))
	}
	if math.IsNaN(c.TimeOffsetHours) || c.TimeOffsetHours < parameter.MinTimeOffsetHours || c.TimeOffsetHours > parameter.MaxTimeOffsetHours {
		errs = append(errs, fmt.Errorf("time_offset_hours %v: want [%v,%v]", c.TimeOffsetHours, parameter.MinTimeOffsetHours, parameter.MaxTimeOffsetHours))
	}
	if c.FPS < parameter.MinFPS || c.FPS > parameter.MaxFPS {
		errs = append(errs, fmt.Errorf("fps %d: want [%d,%d]", c.FPS, parameter.MinFPS, parameter.MaxFPS))
	}
	if _, err := colorful.Hex(c.Theme.Particle); err != nil {
		errs = append(errs, fmt.Errorf("theme.particle %q: %w", c.Theme.Particle, err))
	}
	if _, err := colorful.Hex(c.Theme.Background); err != nil {
		errs = append(errs, fmt.Errorf("theme.background %q: %w", c.Theme.Background, err))
	}

	return errors.Join(errs...)
}

// Normalize clamps every field into range in place, never fails
func (c *Config) Normalize() {
	switch c.Density {
	case DensityLow, DensityMedium, DensityHigh, DensityCustom:
	default:
		c.Density = DensityMedium
	}
	c.CustomCount = vmath.ClampInt(c.CustomCount, parameter.MinParticleCount, parameter.MaxParticleCount)
	c.SpeedTier = vmath.ClampInt(c.SpeedTier, MinTier, MaxTier)
	c.SensitivityTier = vmath.ClampInt(c.SensitivityTier, MinTier, MaxTier)
	c.TimeOffsetHours = vmath.Clamp(vmath.Finite(c.TimeOffsetHours, 0), parameter.MinTimeOffsetHours, parameter.MaxTimeOffsetHours)
	if c.FPS == 0 {
		c.FPS = parameter.DefaultFPS
	}
	c.FPS = vmath.ClampInt(c.FPS, parameter.MinFPS, parameter.MaxFPS)
	if _, err := colorful.Hex(c.Theme.Particle); err != nil {
		c.Theme.Particle = DefaultParticleColor
	}
	if _, err := colorful.Hex(c.Theme.Background); err != nil {
		c.Theme.Background = DefaultBackgroundColor
	}
}

// ParticleCount resolves the density preset, custom counts clamp to [1,500]
func (c Config) ParticleCount() int {
	switch c.Density {
	case DensityLow:
		return parameter.DensityLowCount
	case DensityHigh:
		return parameter.DensityHighCount
	case DensityCustom:
		return vmath.ClampInt(c.CustomCount, parameter.MinParticleCount, parameter.MaxParticleCount)
	default:
		return parameter.DensityMediumCount
	}
}

// SpeedMultiplier maps the speed tier to the integrator multiplier
func (c Config) SpeedMultiplier() float64 {
	return parameter.SpeedTierMultipliers[vmath.ClampInt(c.SpeedTier, MinTier, MaxTier)]
}

// Sensitivity maps the sensitivity tier to the parallax gain, 0 while parallax is off
func (c Config) Sensitivity() float64 {
	if !c.Parallax {
		return 0
	}
	return parameter.SensitivityTierGains[vmath.ClampInt(c.SensitivityTier, MinTier, MaxTier)]
}

// FieldKey returns the tuple that identifies a particle field
func (c Config) FieldKey() FieldKey {
	return FieldKey{
		Count:           c.ParticleCount(),
		SpeedTier:       vmath.ClampInt(c.SpeedTier, MinTier, MaxTier),
		SensitivityTier: vmath.ClampInt(c.SensitivityTier, MinTier, MaxTier),
	}
}

// NextDensity returns the preset after d in cycling order
func NextDensity(d Density) Density {
	for i, v := range Densities {
		if v == d {
			return Densities[(i+1)%len(Densities)]
		}
	}
	return DensityMedium
}
