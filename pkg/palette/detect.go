package palette

import (
	"regexp"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

// Channel grammars. Hue and percentages accept a decimal fraction so that
// every string rendered by color.Color.HSL is detected again.
const (
	intPattern   = `\d+`
	numPattern   = `\d+(?:\.\d+)?`
	alphaPattern = `(?:0(?:\.\d+)?|1(?:\.0+)?|\.\d+)`
)

var formatPatterns = []struct {
	format  color.Format
	pattern *regexp.Regexp
}{
	{color.FormatHex, regexp.MustCompile(`^#(?:[A-Fa-f0-9]{3,4}|[A-Fa-f0-9]{6}|[A-Fa-f0-9]{8})$`)},
	{color.FormatRGB, regexp.MustCompile(`^rgb\(\s*` + intPattern + `\s*,\s*` + intPattern + `\s*,\s*` + intPattern + `\s*\)$`)},
	{color.FormatRGBA, regexp.MustCompile(`^rgba\(\s*` + intPattern + `\s*,\s*` + intPattern + `\s*,\s*` + intPattern + `\s*,\s*` + alphaPattern + `\s*\)$`)},
	{color.FormatHSL, regexp.MustCompile(`^hsl\(\s*` + numPattern + `\s*,\s*` + numPattern + `%\s*,\s*` + numPattern + `%\s*\)$`)},
	{color.FormatHSLA, regexp.MustCompile(`^hsla\(\s*` + numPattern + `\s*,\s*` + numPattern + `%\s*,\s*` + numPattern + `%\s*,\s*` + alphaPattern + `\s*\)$`)},
}

// IdentifyFormat classifies s as hex, rgb, rgba, hsl or hsla. Function names
// are matched case-sensitively; hex digits are not. Hex takes 3, 4, 6 or 8
// digits. Anything else fails with an UNRECOGNIZED_FORMAT error.
//
// The hsl and hsla hue and percentage channels also accept decimals such as
// "hsl(0.5, 12.25%, 40%)", which an integer-only grammar would reject. The
// wider grammar lets every value produced by ConvertToFormat with an hsl
// format be identified again.
func IdentifyFormat(s string) (color.Format, error) {
	for _, fp := range formatPatterns {
		if fp.pattern.MatchString(s) {
			return fp.format, nil
		}
	}
	return "", shadeserrors.NewColorError(shadeserrors.CodeUnrecognizedFormat, s, "", nil)
}

// ConvertToFormat renders c in format. Unknown formats render as hex.
func ConvertToFormat(format color.Format, c color.Color) string {
	return c.Render(format)
}
