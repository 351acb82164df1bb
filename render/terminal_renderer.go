package render

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/celestial"
	"github.com/lixenwraith/stardrift/engine"
)

// TerminalRenderer draws render states onto a tcell screen
// The bottom row is reserved for the status line
type TerminalRenderer struct {
	screen tcell.Screen

	mu     sync.Mutex
	theme  Theme
	status string
	warn   bool
}

// NewTerminalRenderer creates a renderer over an initialized screen
func NewTerminalRenderer(screen tcell.Screen, theme Theme) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, theme: theme}
}

// SetTheme swaps colors for subsequent frames
func (r *TerminalRenderer) SetTheme(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = t
}

// SetStatus replaces the status line text, warn highlights it
func (r *TerminalRenderer) SetStatus(text string, warn bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = text
	r.warn = warn
}

// FieldSize returns the drawable area in cells, excluding the status row
func (r *TerminalRenderer) FieldSize() (width, height int) {
	w, h := r.screen.Size()
	if h > 1 {
		h--
	}
	return w, h
}

// Render draws one frame and shows it, satisfies engine.Sink
func (r *TerminalRenderer) Render(state engine.RenderState) {
	r.mu.Lock()
	theme, status, warn := r.theme, r.status, r.warn
	r.mu.Unlock()

	width, height := r.FieldSize()
	if width <= 0 || height <= 0 {
		return
	}

	bg := theme.BackgroundRGB()
	base := tcell.StyleDefault.Background(bg.Tcell())
	r.fill(width, height+1, base)

	for _, s := range state.Particles {
		x, y, ok := cellOf(s.X, s.Y, width, height)
		if !ok {
			continue
		}
		glyph := particleGlyph(s.Size, state.StarMode)
		r.screen.SetContent(x, y, glyph, nil, base.Foreground(theme.Blend(s.Alpha).Tcell()))
	}

	if b := state.Celestial; b != nil {
		r.drawBody(*b, bg, base, width, height)
	}

	r.drawStatus(status, warn, base, width, height)
	r.screen.Show()
}

func (r *TerminalRenderer) fill(width, height int, style tcell.Style) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBody places the sun or moon glyph with a soft-light halo on neighbouring cells
// Body coordinates are already in cells, the animator viewport matches the field size
func (r *TerminalRenderer) drawBody(b celestial.Body, bg RGB, base tcell.Style, width, height int) {
	cx, cy := int(math.Floor(b.X)), int(math.Floor(b.Y))
	if cx < 0 || cx >= width || cy < 0 || cy >= height || b.Alpha <= 0 {
		return
	}

	tint, glyph := RgbMoon, rune(GlyphMoon)
	if b.Kind == celestial.KindSun {
		tint, glyph = RgbSun, GlyphSun
	}

	halo := SoftLight(bg, tint, b.Alpha)
	for dy := -1; dy <= 1; dy++ {
		for dx := -2; dx <= 2; dx++ {
			x, y := cx+dx, cy+dy
			if (dx == 0 && dy == 0) || x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			mainc, comb, style, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, mainc, comb, style.Background(halo.Tcell()))
		}
	}
	fg := Blend(bg, tint, b.Alpha)
	r.screen.SetContent(cx, cy, glyph, nil, base.Background(halo.Tcell()).Foreground(fg.Tcell()))
}

func (r *TerminalRenderer) drawStatus(text string, warn bool, base tcell.Style, width, row int) {
	fg := RgbStatusText
	if warn {
		fg = RgbStatusWarn
	}
	style := base.Foreground(fg.Tcell())
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, style)
		x++
	}
}

// cellOf maps normalized coordinates to a cell, the wrap band outside [0,1) is not drawn
func cellOf(nx, ny float64, width, height int) (x, y int, ok bool) {
	if nx < 0 || nx >= 1 || ny < 0 || ny >= 1 {
		return 0, 0, false
	}
	return int(nx * float64(width)), int(ny * float64(height)), true
}

// particleGlyph buckets size [1,4) into the glyph ramp
func particleGlyph(size float64, star bool) rune {
	if star {
		return starGlyphs[bucket(size, len(starGlyphs))]
	}
	return particleGlyphs[bucket(size, len(particleGlyphs))]
}

func bucket(size float64, n int) int {
	i := int((size - 1) / 3 * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
