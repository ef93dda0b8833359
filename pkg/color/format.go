package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Format names a textual colour syntax.
type Format string

const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatRGBA Format = "rgba"
	FormatHSL  Format = "hsl"
	FormatHSLA Format = "hsla"
	FormatName Format = "name"
	FormatCSS  Format = "css"
)

// DefaultFormat is used when a requested format is not recognised.
const DefaultFormat = FormatHex

var renderers = map[Format]func(Color) string{
	FormatHex:  Color.Hex,
	FormatRGB:  Color.CSS,
	FormatRGBA: Color.CSS,
	FormatHSL:  Color.HSL,
	FormatHSLA: Color.HSL,
	FormatName: Color.Name,
	FormatCSS:  Color.CSS,
}

// Formats lists every format in a stable order.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatRGBA, FormatHSL, FormatHSLA, FormatName, FormatCSS}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	_, ok := renderers[f]
	return f, ok
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	_, ok := renderers[f]
	return ok
}

// Render formats c in f. Unknown formats render as hex.
func (c Color) Render(f Format) string {
	render, ok := renderers[f]
	if !ok {
		render = renderers[DefaultFormat]
	}
	return render(c)
}

// Hex renders #rrggbb, or #rrggbbaa when the colour is translucent.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	if c.alpha < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, uint8(math.Round(c.alpha*255)))
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// CSS renders rgb(r,g,b), or rgba(r,g,b,a) when the colour is translucent.
func (c Color) CSS() string {
	r, g, b := c.RGB255()
	if c.alpha < 1 {
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatNumber(c.alpha))
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// HSL renders hsl(h,s%,l%), or hsla(h,s%,l%,a) when the colour is translucent.
// Values are rounded to two decimals.
func (c Color) HSL() string {
	h, s, l, _ := hsl(round8(c.rgb))
	hs := fmt.Sprintf("%s,%s%%,%s%%", formatNumber(h), formatNumber(s*100), formatNumber(l*100))
	if c.alpha < 1 {
		return fmt.Sprintf("hsla(%s,%s)", hs, formatNumber(c.alpha))
	}
	return fmt.Sprintf("hsl(%s)", hs)
}

// Name returns the CSS colour name matching the 8-bit channels, ignoring
// alpha, or the six digit hex form when no name matches.
func (c Color) Name() string {
	r, g, b := c.RGB255()
	if name, ok := namesByRGB[[3]uint8{r, g, b}]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// namesByRGB maps channels to the alphabetically first CSS name. Built once at
// init and read-only afterwards.
var namesByRGB = func() map[[3]uint8]string {
	index := make(map[[3]uint8]string, len(colornames.Names))
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		key := [3]uint8{rgba.R, rgba.G, rgba.B}
		if _, seen := index[key]; !seen {
			index[key] = name
		}
	}
	return index
}()

func formatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
