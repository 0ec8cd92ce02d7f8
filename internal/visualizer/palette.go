package visualizer

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/spectrum"
)

// Spawn-time particle palettes. Which pair is used depends on the
// dominant frequency band at the moment of spawn; the final color is an
// interpolation within the pair by a random factor.
var (
	warmPaletteA = colorful.Color{R: 1.00, G: 0.45, B: 0.10}
	warmPaletteB = colorful.Color{R: 1.00, G: 0.85, B: 0.30}

	coolPaletteA = colorful.Color{R: 0.25, G: 0.55, B: 1.00}
	coolPaletteB = colorful.Color{R: 0.60, G: 0.95, B: 1.00}

	neutralPaletteA = colorful.Color{R: 0.80, G: 0.80, B: 0.90}
	neutralPaletteB = colorful.Color{R: 1.00, G: 1.00, B: 1.00}
)

// paletteFor picks the palette pair for the dominant band: warm when low
// frequencies dominate, cool when highs dominate, neutral otherwise.
func paletteFor(b spectrum.BandLevels) (colorful.Color, colorful.Color) {
	switch {
	case b.Low > b.Mid && b.Low > b.High:
		return warmPaletteA, warmPaletteB
	case b.High > b.Mid && b.High > b.Low:
		return coolPaletteA, coolPaletteB
	default:
		return neutralPaletteA, neutralPaletteB
	}
}

// blendPalette interpolates within a palette pair in HCL space, which
// keeps perceived brightness stable across the blend.
func blendPalette(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendHcl(b, t).Clamped()
}

// ledZoneColor returns the classic meter zone color for a normalized
// vertical position: green below 40%, blending to yellow until 75%, then
// to red.
func ledZoneColor(ratio float64) color.RGBA {
	green := colorful.Color{R: 0.10, G: 0.90, B: 0.25}
	yellow := colorful.Color{R: 0.95, G: 0.80, B: 0.10}
	red := colorful.Color{R: 0.95, G: 0.20, B: 0.15}

	var c colorful.Color
	switch {
	case ratio < 0.4:
		c = green
	case ratio < 0.75:
		c = green.BlendHcl(yellow, (ratio-0.4)/0.35)
	default:
		c = yellow.BlendHcl(red, (ratio-0.75)/0.25)
	}
	return toRGBA(c.Clamped())
}

// themeGradient builds the vertical bar gradient from the accent color:
// a darkened base at the bottom rising to a lightened tip.
func themeGradient(accent color.RGBA) []paint.Stop {
	c := toColorful(accent)
	dark := c.BlendHcl(colorful.Color{}, 0.55).Clamped()
	light := c.BlendHcl(colorful.Color{R: 1, G: 1, B: 1}, 0.45).Clamped()
	return []paint.Stop{
		{Pos: 0, Color: toRGBA(light)},
		{Pos: 0.5, Color: accent},
		{Pos: 1, Color: toRGBA(dark)},
	}
}

// shade darkens (negative amount) or lightens (positive amount) the color
// in HCL space. Used for the pseudo-3D face shading of the cubes style.
func shade(c color.RGBA, amount float64) color.RGBA {
	cc := toColorful(c)
	if amount >= 0 {
		return toRGBA(cc.BlendHcl(colorful.Color{R: 1, G: 1, B: 1}, amount).Clamped())
	}
	return toRGBA(cc.BlendHcl(colorful.Color{}, -amount).Clamped())
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{R: 0, G: 200, B: 255, A: 255}
	}
	if cc, ok := c.(colorful.Color); ok {
		r, g, b := cc.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// withAlpha scales the color's alpha by factor in [0, 1].
func withAlpha(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	c.A = uint8(float64(c.A) * factor)
	return c
}
