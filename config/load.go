package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/stardrift/core"
)

// Environment overrides, applied after the file
const (
	EnvDensity         = "STARDRIFT_DENSITY"
	EnvParticles       = "STARDRIFT_PARTICLES"
	EnvSpeedTier       = "STARDRIFT_SPEED_TIER"
	EnvParallax        = "STARDRIFT_PARALLAX"
	EnvSensitivityTier = "STARDRIFT_SENSITIVITY_TIER"
	EnvStarMode        = "STARDRIFT_STAR_MODE"
	EnvTimeMode        = "STARDRIFT_TIME_MODE"
	EnvTimeOffset      = "STARDRIFT_TIME_OFFSET"
	EnvOLED            = "STARDRIFT_OLED"
	EnvFPS             = "STARDRIFT_FPS"
)

// Decode reads TOML from r over the defaults, unknown keys are logged and ignored
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		core.Logger().Warn("unknown config keys ignored", "keys", strings.Join(keys, ","))
	}
	return cfg, nil
}

// Load reads the TOML file at path, applies environment overrides and normalizes
// An empty path or a missing file yields the defaults; a malformed file is an error
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			core.Logger().Info("config file not found, using defaults", "path", path)
		case err != nil:
			return Default(), fmt.Errorf("open config %s: %w", path, err)
		default:
			defer f.Close()
			if cfg, err = Decode(f); err != nil {
				return Default(), fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		core.Logger().Warn("config repaired", "error", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// ApplyEnv overrides fields from STARDRIFT_* variables, unparseable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDensity); v != "" {
		c.Density = Density(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := os.Getenv(EnvParticles); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Density = DensityCustom
			c.CustomCount = n
		}
	}
	if v := os.Getenv(EnvSpeedTier); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SpeedTier = n
		}
	}
	if v := os.Getenv(EnvParallax); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Parallax = b
		}
	}
	if v := os.Getenv(EnvSensitivityTier); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SensitivityTier = n
		}
	}
	if v := os.Getenv(EnvStarMode); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.StarMode = b
		}
	}
	if v := os.Getenv(EnvTimeMode); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.TimeMode = b
		}
	}
	if v := os.Getenv(EnvTimeOffset); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.TimeOffsetHours = f
		}
	}
	if v := os.Getenv(EnvOLED); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Theme.OLED = b
		}
	}
	if v := os.Getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FPS = n
		}
	}
}

// Write encodes the configuration as TOML
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
