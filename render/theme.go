package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/vmath"
)

// Theme is the resolved color set for a frame
type Theme struct {
	Particle   colorful.Color
	Background colorful.Color
	OLED       bool
}

// NewTheme parses the configured hex colors
// OLED replaces the background with pure black
func NewTheme(t config.Theme) (Theme, error) {
	p, err := colorful.Hex(t.Particle)
	if err != nil {
		return Theme{}, fmt.Errorf("particle color %q: %w", t.Particle, err)
	}
	bg, err := colorful.Hex(t.Background)
	if err != nil {
		return Theme{}, fmt.Errorf("background color %q: %w", t.Background, err)
	}
	if t.OLED {
		bg = colorful.Color{}
	}
	return Theme{Particle: p, Background: bg, OLED: t.OLED}, nil
}

// MustTheme resolves t, falling back to the stock colors on parse failure
func MustTheme(t config.Theme) Theme {
	th, err := NewTheme(t)
	if err != nil {
		def := config.Default().Theme
		def.OLED = t.OLED
		th, _ = NewTheme(def)
	}
	return th
}

// BackgroundRGB returns the quantized background
func (t Theme) BackgroundRGB() RGB {
	return FromColorful(t.Background)
}

// Blend returns the particle color at alpha over the background, mixed in Lab
func (t Theme) Blend(alpha float64) RGB {
	alpha = vmath.Clamp(alpha, 0, 1)
	switch alpha {
	case 0:
		return FromColorful(t.Background)
	case 1:
		return FromColorful(t.Particle)
	}
	return FromColorful(t.Background.BlendLab(t.Particle, alpha))
}
