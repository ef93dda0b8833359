package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

func TestIdentifyFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]color.Format{
		"#ffffff":                  color.FormatHex,
		"#FFF":                     color.FormatHex,
		"#ffffffaa":                color.FormatHex,
		"#fFfA":                    color.FormatHex,
		"rgb(255, 0, 0)":           color.FormatRGB,
		"rgb( 0,255,0 )":           color.FormatRGB,
		"rgba(255, 0, 0, 0.5)":     color.FormatRGBA,
		"rgba(0, 255, 0, 1)":       color.FormatRGBA,
		"rgba(0,0,0,.25)":          color.FormatRGBA,
		"hsl(0, 100%, 50%)":        color.FormatHSL,
		"hsl(120, 100%, 25%)":      color.FormatHSL,
		"hsl(0,90.6%,70.78%)":      color.FormatHSL,
		"hsla(0, 100%, 50%, 0.5)":  color.FormatHSLA,
		"hsla(120, 100%, 25%, 1)":  color.FormatHSLA,
		"hsla(0,90.6%,70.78%,0.9)": color.FormatHSLA,
	}

	for input, want := range cases {
		input, want := input, want
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			got, err := IdentifyFormat(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestIdentifyFormatHexAgreesWithParse(t *testing.T) {
	t.Parallel()

	digits := "0123456789"
	for n := 1; n <= len(digits); n++ {
		input := "#" + digits[:n]
		format, err := IdentifyFormat(input)
		if color.Valid(input) {
			require.NoError(t, err, input)
			assert.Equal(t, color.FormatHex, format, input)
			continue
		}
		assert.ErrorIs(t, err, shadeserrors.ErrUnrecognizedFormat, input)
	}

	for _, input := range []string{"#123", "#1234", "#123456", "#12345678"} {
		assert.True(t, color.Valid(input), input)
	}
}

func TestIdentifyFormatRejectsUnknownSyntax(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"invalid-color",
		"red",
		"#ggg",
		"#12345",
		"#1234567",
		"#123456789",
		"RGB(1, 2, 3)",
		"rgb(1, 2)",
		"rgb(-1, 2, 3)",
		"rgba(1, 2, 3, 1.5)",
		"hsl(0, 50, 50%)",
		" #fff",
	} {
		_, err := IdentifyFormat(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, shadeserrors.ErrUnrecognizedFormat, input)
	}
}

func TestConvertToFormatRoundTripsThroughDetector(t *testing.T) {
	t.Parallel()

	opaque := []string{"#f87171", "#60a5fa", "#fbbf24", "#000000", "#ffffff", "#7c3aed"}
	for _, hex := range opaque {
		c := color.MustParse(hex)
		for _, format := range []color.Format{color.FormatHex, color.FormatRGB, color.FormatHSL} {
			got, err := IdentifyFormat(ConvertToFormat(format, c))
			require.NoError(t, err)
			assert.Equal(t, format, got, "%s as %s", hex, format)
		}

		translucent := c.WithAlpha(0.36)
		for _, format := range []color.Format{color.FormatHex, color.FormatRGBA, color.FormatHSLA} {
			got, err := IdentifyFormat(ConvertToFormat(format, translucent))
			require.NoError(t, err)
			assert.Equal(t, format, got, "%s translucent as %s", hex, format)
		}
	}
}

func TestConvertToFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#f87171", ConvertToFormat(color.FormatHex, color.MustParse("#f87171")))
	assert.Equal(t, "rgb(248,113,113)", ConvertToFormat(color.FormatRGB, color.MustParse("#f87171")))
	assert.Equal(t, "rgba(248,113,113,0.9)", ConvertToFormat(color.FormatRGBA, color.MustParse("#f87171e6")))
	assert.Equal(t, "hsl(0,90.6%,70.78%)", ConvertToFormat(color.FormatHSL, color.MustParse("#f87171")))
	assert.Equal(t, "hsla(0,90.6%,70.78%,0.9)", ConvertToFormat(color.FormatHSLA, color.MustParse("#f87171e6")))
}
