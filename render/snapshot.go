package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/stardrift/celestial"
	"github.com/lixenwraith/stardrift/engine"
)

const (
	snapshotParticleScale = 1.5 // pixels per unit of particle size
	snapshotCaptionMargin = 8
)

// SnapshotRenderer rasterizes a single render state to an image
// The animator viewport must match Width x Height for the celestial body to line up
type SnapshotRenderer struct {
	Width, Height int
	Theme         Theme
	Caption       string
}

// NewSnapshotRenderer creates a renderer for width x height pixel images
func NewSnapshotRenderer(width, height int, theme Theme) *SnapshotRenderer {
	return &SnapshotRenderer{Width: width, Height: height, Theme: theme}
}

// Draw rasterizes state into a new image
func (r *SnapshotRenderer) Draw(state engine.RenderState) image.Image {
	dc := gg.NewContext(r.Width, r.Height)
	w, h := float64(r.Width), float64(r.Height)

	dc.SetColor(r.Theme.BackgroundRGB().RGBA())
	dc.Clear()

	if b := state.Celestial; b != nil {
		drawBodyPNG(dc, *b, r.Theme.BackgroundRGB())
	}

	for _, s := range state.Particles {
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			continue
		}
		dc.SetColor(withAlpha(FromColorful(r.Theme.Particle), s.Alpha))
		dc.DrawCircle(s.X*w, s.Y*h, s.Size*snapshotParticleScale)
		dc.Fill()
	}

	if r.Caption != "" {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(RgbStatusText.RGBA())
		dc.DrawString(r.Caption, snapshotCaptionMargin, h-snapshotCaptionMargin)
	}

	return dc.Image()
}

// Encode writes state as PNG
func (r *SnapshotRenderer) Encode(w io.Writer, state engine.RenderState) error {
	if err := png.Encode(w, r.Draw(state)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Save writes state to a PNG file
func (r *SnapshotRenderer) Save(path string, state engine.RenderState) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := r.Encode(f, state); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func drawBodyPNG(dc *gg.Context, b celestial.Body, bg RGB) {
	tint := RgbMoon
	if b.Kind == celestial.KindSun {
		tint = RgbSun
	}
	radius := b.Size / 2

	// Halo then disc
	dc.SetColor(withAlpha(tint, b.Alpha*0.25))
	dc.DrawCircle(b.X, b.Y, radius*1.6)
	dc.Fill()
	dc.SetColor(withAlpha(tint, b.Alpha))
	dc.DrawCircle(b.X, b.Y, radius)
	dc.Fill()

	if b.Kind == celestial.KindMoon {
		// Crescent cut-out
		dc.SetColor(withAlpha(bg, b.Alpha*0.6))
		dc.DrawCircle(b.X+radius*0.4, b.Y-radius*0.2, radius*0.85)
		dc.Fill()
	}
}

func withAlpha(c RGB, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: clamp(alpha*255 + 0.5)}
}

// SnapshotCaption formats the default caption for a frame
func SnapshotCaption(state engine.RenderState) string {
	s := fmt.Sprintf("frame %d  particles %d", state.Frame, len(state.Particles))
	if b := state.Celestial; b != nil {
		s += fmt.Sprintf("  %s %s %.0f%%", b.Kind, b.Window, b.Progress*100)
	}
	if state.StarMode {
		s += "  stars"
	}
	return s
}
