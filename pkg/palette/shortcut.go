package palette

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

// Lab lightness steps for the ends of the GenerateShadesForBaseColor ramp.
const (
	shortcutBrighten = 3.04
	shortcutDarken   = 2.8
)

// ColorInput is a base colour given as text or as 0..255 channels with an
// optional 0..1 alpha.
type ColorInput struct {
	text     string
	channels []float64
	isTuple  bool
}

// Text wraps a colour string.
func Text(s string) ColorInput {
	return ColorInput{text: s}
}

// Channels wraps r, g, b and an optional alpha.
func Channels(ch ...float64) ColorInput {
	return ColorInput{channels: append([]float64(nil), ch...), isTuple: true}
}

// Color parses the input.
func (in ColorInput) Color() (color.Color, error) {
	if in.isTuple {
		return color.FromChannels(in.channels...)
	}
	return color.Parse(in.text)
}

// GenerateShadesForBaseColor is a standalone 11-step generator, tuned
// separately from CreatePalette. It brightens and darkens the base by fixed
// Lab steps, interpolates in color.DefaultBlend and keeps only the requested
// steps. Empty steps means all of ShadeSteps; an empty format means hex.
func GenerateShadesForBaseColor(base ColorInput, steps []Step, format color.Format) (ShadePalette, error) {
	c, err := base.Color()
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = color.FormatHex
	}

	vocabulary := ShadeSteps()
	if len(steps) == 0 {
		steps = vocabulary
	}

	wanted := make(map[Step]bool, len(steps))
	for _, step := range steps {
		i := sort.Search(len(vocabulary), func(i int) bool { return vocabulary[i] >= step })
		if i == len(vocabulary) || vocabulary[i] != step {
			return nil, shadeserrors.NewColorError(shadeserrors.CodeUnknownStep, fmt.Sprint(int(step)),
				fmt.Sprintf("step is not one of %v", vocabulary), nil)
		}
		wanted[step] = true
	}

	// The ends are quantized through hex, so they carry 8-bit channels.
	lightest := color.MustParse(c.Brighten(shortcutBrighten).Hex())
	darkest := color.MustParse(c.Darken(shortcutDarken).Hex())
	spectrum := color.NewScale(lightest, c, darkest).Colors(len(vocabulary))

	out := make(ShadePalette, 0, len(wanted))
	for i, step := range vocabulary {
		if wanted[step] {
			out = append(out, Shade{Step: step, Value: ConvertToFormat(format, spectrum[i])})
		}
	}
	return out, nil
}
