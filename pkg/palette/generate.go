package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

// Ramp anchors for GenerateColorShades: luminance offsets for the light and
// dark ends, each followed by a small Lab lightness nudge.
const (
	luminanceIncrease = 0.65
	luminanceDecrease = 0.21
	lightnessChange   = 0.1
)

// alphaSteps holds the opacity of each alpha shade, lightest first.
var alphaSteps = [...]float64{0.04, 0.06, 0.08, 0.16, 0.24, 0.36, 0.48, 0.64, 0.8, 0.92, 1}

// MaxAlphaShades is the number of opacity levels an alpha ramp can hold.
const MaxAlphaShades = len(alphaSteps)

// GenerationType selects how a primary colour is expanded into shades.
type GenerationType string

const (
	TypeShades GenerationType = "shades"
	TypeAlpha  GenerationType = "alpha"
)

// DefaultType is used when a Spec leaves Type empty.
const DefaultType = TypeShades

// Valid reports whether t is a known generation type.
func (t GenerationType) Valid() bool {
	return t == TypeShades || t == TypeAlpha
}

// GenerateColorShades returns n colours ramping from a light tint through
// base to a dark shade, lightest first. The ramp interpolates in HSL between
// anchors derived from the base colour's luminance.
func GenerateColorShades(base string, n int) ([]color.Color, error) {
	c, err := color.Parse(base)
	if err != nil {
		return nil, err
	}
	return colorShades(c, n)
}

// GenerateAlphaShades returns n rgba strings of base at increasing opacity.
// n must be between 1 and MaxAlphaShades.
func GenerateAlphaShades(base string, n int) ([]string, error) {
	c, err := color.Parse(base)
	if err != nil {
		return nil, err
	}

	shades, err := alphaShades(c, n)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(shades))
	for i, shade := range shades {
		out[i] = ConvertToFormat(color.FormatRGBA, shade)
	}
	return out, nil
}

func colorShades(base color.Color, n int) ([]color.Color, error) {
	if n < 1 {
		return nil, shadeCountError(n, "at least 1 shade is required")
	}

	lum := base.Luminance()
	lightest := base.SetLuminance(lum + luminanceIncrease).Brighten(lightnessChange)
	darkest := base.SetLuminance(lum - luminanceDecrease).Darken(lightnessChange)

	return color.NewScale(lightest, base, darkest).Mode(color.BlendHSL).Colors(n), nil
}

func alphaShades(base color.Color, n int) ([]color.Color, error) {
	if n < 1 || n > MaxAlphaShades {
		return nil, shadeCountError(n, fmt.Sprintf("alpha ramps hold between 1 and %d shades", MaxAlphaShades))
	}

	out := make([]color.Color, n)
	for i := range out {
		out[i] = base.WithAlpha(alphaSteps[i])
	}
	return out, nil
}

func shadeCountError(n int, reason string) error {
	return shadeserrors.NewColorError(shadeserrors.CodeUnsupportedShadeCount, "",
		fmt.Sprintf("%s, got %d", reason, n), nil)
}
