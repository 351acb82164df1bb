package render

// Fixed palette for elements the theme does not customize
var (
	RgbSun        = RGB{255, 214, 102} // Warm yellow
	RgbMoon       = RGB{214, 224, 255} // Cold white
	RgbStatusText = RGB{170, 178, 196} // Muted gray
	RgbStatusWarn = RGB{255, 140, 90}  // Orange for uncalibrated parallax
)

// Terminal glyphs
const (
	GlyphSun  = '☀'
	GlyphMoon = '☾'
)

// particleGlyphs are ordered by particle size bucket
var (
	particleGlyphs = [...]rune{'·', '•', '●'}
	starGlyphs     = [...]rune{'.', '+', '*', '✦'}
)
