package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/vmath"
)

const (
	envHaptics       = "STARDRIFT_HAPTICS"
	envHapticsVolume = "STARDRIFT_HAPTICS_VOLUME"
	envSampleRate    = "STARDRIFT_SAMPLE_RATE"

	DefaultSampleRate = 44100
	DefaultVolume     = 0.6
)

// Config controls feedback clicks
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
}

// DefaultConfig returns enabled feedback at moderate volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     DefaultVolume,
		SampleRate: DefaultSampleRate,
	}
}

// LoadConfig loads feedback configuration from environment variables
// Unparseable values are logged and ignored
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(envHaptics); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		} else {
			core.Logger().Warn("ignoring env", "key", envHaptics, "value", enabled)
		}
	}

	// Volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(envHapticsVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = vmath.Clamp(float64(val)/100.0, 0, 1)
		} else {
			core.Logger().Warn("ignoring env", "key", envHapticsVolume, "value", volume)
		}
	}

	if sampleRate := os.Getenv(envSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		} else {
			core.Logger().Warn("ignoring env", "key", envSampleRate, "value", sampleRate)
		}
	}

	return cfg
}
