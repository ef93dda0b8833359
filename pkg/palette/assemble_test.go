package palette

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

var (
	hex6Pattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\d{1,3},\d{1,3},\d{1,3}\)$`)
)

func rampOf(t *testing.T, p NamedPalette, name string) ShadePalette {
	t.Helper()

	v, ok := p.Get(name)
	require.True(t, ok, "palette %q missing", name)
	shades, ok := v.Shades()
	require.True(t, ok, "palette %q is not a ramp", name)
	return shades
}

func TestCreatePaletteTailwindByDefault(t *testing.T) {
	t.Parallel()

	p, err := CreatePalette(Primary("red", "#f87171"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"red"}, p.Names())

	ramp := rampOf(t, p, "red")
	assert.Equal(t, []Step{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}, ramp.Steps())
	for _, shade := range ramp {
		assert.Regexp(t, hex6Pattern, shade.Value, "step %d", shade.Step)
	}

	mid, _ := ramp.Get(500)
	assert.Equal(t, "#f87171", mid)
}

func TestCreatePaletteSystems(t *testing.T) {
	t.Parallel()

	cases := []struct {
		system System
		steps  []Step
	}{
		{SystemTailwind, []Step{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}},
		{SystemChakra, []Step{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}},
		{SystemAntDesign, []Step{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.system), func(t *testing.T) {
			t.Parallel()

			p, err := CreatePalette(Primary("brand", "#60a5fa"), Options{System: tc.system})
			require.NoError(t, err)
			assert.Equal(t, tc.steps, rampOf(t, p, "brand").Steps())
		})
	}
}

func TestCreatePaletteUnknownSystem(t *testing.T) {
	t.Parallel()

	_, err := CreatePalette(Primary("brand", "#60a5fa"), Options{System: "material"})
	assert.ErrorIs(t, err, shadeserrors.ErrUnknownSystem)
}

func TestCreatePaletteTargetFormat(t *testing.T) {
	t.Parallel()

	p, err := CreatePalette(Primary("red", "#f87171"), Options{Format: color.FormatRGB})
	require.NoError(t, err)
	for _, shade := range rampOf(t, p, "red") {
		assert.Regexp(t, rgbPattern, shade.Value, "step %d", shade.Step)
	}
}

func TestCreatePaletteDetectsSeedFormat(t *testing.T) {
	t.Parallel()

	p, err := CreatePalette(Primary("green", "hsl(142, 71%, 45%)"), Options{})
	require.NoError(t, err)
	for _, shade := range rampOf(t, p, "green") {
		format, err := IdentifyFormat(shade.Value)
		require.NoError(t, err)
		assert.Equal(t, color.FormatHSL, format, shade.Value)
	}
}

func TestCreatePaletteAlphaType(t *testing.T) {
	t.Parallel()

	p, err := CreatePalette(Primary("red", "#f87171").WithType(TypeAlpha), Options{})
	require.NoError(t, err)
	ramp := rampOf(t, p, "red")

	first, _ := ramp.Get(50)
	assert.Equal(t, "#f871710a", first)
	last, _ := ramp.Get(950)
	assert.Equal(t, "#f87171", last)

	p, err = CreatePalette(Primary("red", "#f87171").WithType(TypeAlpha), Options{Format: color.FormatRGBA})
	require.NoError(t, err)
	first, _ = rampOf(t, p, "red").Get(50)
	assert.Equal(t, "rgba(248,113,113,0.04)", first)
}

func TestCreatePaletteInvalidSeed(t *testing.T) {
	t.Parallel()

	_, err := CreatePalette(Primary("red", "not-a-color"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, shadeserrors.ErrInvalidColor)
	assert.Contains(t, err.Error(), "not-a-color")
	assert.Contains(t, err.Error(), `palette "red"`)
}

func TestCreatePaletteNamedSeedNeedsFormat(t *testing.T) {
	t.Parallel()

	_, err := CreatePalette(Primary("red", "red"), Options{})
	assert.ErrorIs(t, err, shadeserrors.ErrUnrecognizedFormat)

	p, err := CreatePalette(Primary("red", "red"), Options{Format: color.FormatHex})
	require.NoError(t, err)
	mid, _ := rampOf(t, p, "red").Get(500)
	assert.Equal(t, "#ff0000", mid)
}

func TestCreatePaletteSinglePassesThrough(t *testing.T) {
	t.Parallel()

	p, err := CreatePalette(Single("white", "  whatever-you-like  "), Options{Format: color.FormatRGB})
	require.NoError(t, err)

	v, ok := p.Get("white")
	require.True(t, ok)
	single, ok := v.Single()
	require.True(t, ok)
	assert.Equal(t, "  whatever-you-like  ", single)
}

func TestCreatePaletteRejectsMalformedSpec(t *testing.T) {
	t.Parallel()

	_, err := CreatePalette(Spec{Name: "empty"}, Options{})
	assert.ErrorIs(t, err, shadeserrors.ErrInvalidColor)

	_, err = CreatePalette(Primary("red", "#f87171").WithType("gradient"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generation type")
}

func TestCreatePalettesKeepsInputOrder(t *testing.T) {
	t.Parallel()

	p, err := CreatePalettes([]Source{
		Primary("red", "#f87171"),
		Primary("blue", "#60a5fa"),
		Single("white", "#ffffff"),
		Primary("yellow", "#fbbf24"),
	}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue", "white", "yellow"}, p.Names())
}

func TestCreatePalettesMergesFragmentsLast(t *testing.T) {
	t.Parallel()

	var fragment NamedPalette
	fragment.Set("red", SingleValue("#000000"))
	fragment.Set("ink", SingleValue("#111827"))

	var overwritten []string
	p, err := CreatePalettes([]Source{
		Primary("red", "#f87171"),
		fragment,
		Primary("blue", "#60a5fa"),
		Single("red", "#ffffff"),
	}, Options{OnOverwrite: func(name string) { overwritten = append(overwritten, name) }})
	require.NoError(t, err)

	assert.Equal(t, []string{"red", "blue", "ink"}, p.Names())
	assert.Equal(t, []string{"red", "red"}, overwritten)

	v, _ := p.Get("red")
	single, ok := v.Single()
	require.True(t, ok)
	assert.Equal(t, "#000000", single)
}

func TestCreatePalettesAcceptsFragmentPointers(t *testing.T) {
	t.Parallel()

	fragment := &NamedPalette{}
	fragment.Set("ink", SingleValue("#111827"))

	p, err := CreatePalettes([]Source{fragment, (*NamedPalette)(nil)}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ink"}, p.Names())
}

func TestCreatePalettesFailsOnAnyBadSpec(t *testing.T) {
	t.Parallel()

	p, err := CreatePalettes([]Source{
		Primary("red", "#f87171"),
		Primary("broken", "#zzzzzz"),
	}, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, shadeserrors.ErrInvalidColor)
	assert.Zero(t, p.Len())
}

func TestCreatePalettesEmpty(t *testing.T) {
	t.Parallel()

	p, err := CreatePalettes(nil, Options{})
	require.NoError(t, err)
	assert.Zero(t, p.Len())
}
