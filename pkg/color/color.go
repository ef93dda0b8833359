// Package color adapts go-colorful into the small colour engine used by the
// palette generators: parsing, luminance and lightness adjustment, multi-stop
// scales and per-format rendering.
//
// Values are immutable. Every constructor clamps channels into the sRGB gamut
// and alpha into [0, 1], so a Color is always renderable.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// labStep is the Lab lightness change applied per unit of Brighten/Darken.
	// go-colorful keeps L in [0, 1], so this equals 18 L* units.
	labStep = 0.18

	luminanceEpsilon = 1e-7
	luminanceMaxIter = 20
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Color is an sRGB colour with an alpha channel.
type Color struct {
	rgb   colorful.Color
	alpha float64
}

// New builds a Color from a go-colorful value and an alpha in [0, 1].
func New(c colorful.Color, alpha float64) Color {
	return Color{rgb: c.Clamped(), alpha: clamp01(alpha)}
}

// FromRGBA255 builds a Color from 8-bit channels and a fractional alpha.
func FromRGBA255(r, g, b uint8, alpha float64) Color {
	return New(colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, alpha)
}

// Colorful returns the underlying go-colorful value without alpha.
func (c Color) Colorful() colorful.Color {
	return c.rgb
}

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float64 {
	return c.alpha
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(alpha float64) Color {
	return New(c.rgb, alpha)
}

// RGB255 returns the channels rounded to 8 bits.
func (c Color) RGB255() (r, g, b uint8) {
	return c.rgb.RGB255()
}

// Equal reports whether both colours render to the same 8-bit channels and alpha.
func (c Color) Equal(other Color) bool {
	r1, g1, b1 := c.RGB255()
	r2, g2, b2 := other.RGB255()
	return r1 == r2 && g1 == g2 && b1 == b2 && math.Abs(c.alpha-other.alpha) < 1e-9
}

// Luminance returns the WCAG relative luminance, 0 for black and 1 for white.
func (c Color) Luminance() float64 {
	return luminance(c.rgb)
}

// SetLuminance returns a colour with the requested relative luminance and the
// same alpha. It bisects towards black or white in RGB; targets outside [0, 1]
// converge on black or white.
func (c Color) SetLuminance(target float64) Color {
	switch {
	case target <= 0:
		return New(black, c.alpha)
	case target >= 1:
		return New(white, c.alpha)
	}

	low, high := c.rgb, white
	if luminance(c.rgb) > target {
		low, high = black, c.rgb
	}

	var mid colorful.Color
	for i := 0; ; i++ {
		mid = low.BlendRgb(high, 0.5)
		current := luminance(mid)
		if math.Abs(target-current) < luminanceEpsilon || i >= luminanceMaxIter {
			break
		}
		if current > target {
			high = mid
		} else {
			low = mid
		}
	}

	return New(round8(mid), c.alpha)
}

// Brighten raises Lab lightness by amount steps.
func (c Color) Brighten(amount float64) Color {
	l, a, b := c.rgb.Lab()
	return New(colorful.Lab(l+labStep*amount, a, b), c.alpha)
}

// Darken lowers Lab lightness by amount steps.
func (c Color) Darken(amount float64) Color {
	return c.Brighten(-amount)
}

// String renders the colour as hex.
func (c Color) String() string {
	return c.Hex()
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func round8(c colorful.Color) colorful.Color {
	r, g, b := c.Clamped().RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 1
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
