package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

var (
	hexPattern        = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	functionalPattern = regexp.MustCompile(`^(rgba?|hsla?)\(\s*(.*?)\s*\)$`)
)

// Parse reads a colour in hex, rgb(), rgba(), hsl(), hsla() or CSS name form.
// It fails with an INVALID_COLOR error when the text is not a colour.
func Parse(s string) (Color, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Color{}, shadeserrors.NewColorError(shadeserrors.CodeInvalidColor, s, "", nil)
	}

	var (
		c   Color
		err error
	)
	switch lower := strings.ToLower(text); {
	case strings.HasPrefix(lower, "#"):
		c, err = parseHex(lower)
	case functionalPattern.MatchString(lower):
		c, err = parseFunctional(lower)
	default:
		rgba, ok := colornames.Map[lower]
		if !ok {
			err = fmt.Errorf("unknown color name")
		}
		c = FromRGBA255(rgba.R, rgba.G, rgba.B, 1)
	}

	if err != nil {
		return Color{}, shadeserrors.NewColorError(shadeserrors.CodeInvalidColor, s, "", err)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether s parses as a colour.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FromChannels builds a colour from 0..255 red, green and blue channels and an
// optional 0..1 alpha.
func FromChannels(channels ...float64) (Color, error) {
	if len(channels) != 3 && len(channels) != 4 {
		return Color{}, shadeserrors.NewColorError(shadeserrors.CodeInvalidColor, formatChannels(channels),
			fmt.Sprintf("expected 3 or 4 channels, got %d", len(channels)), nil)
	}
	for _, ch := range channels {
		if math.IsNaN(ch) || math.IsInf(ch, 0) {
			return Color{}, shadeserrors.NewColorError(shadeserrors.CodeInvalidColor, formatChannels(channels), "channels must be finite", nil)
		}
	}

	alpha := 1.0
	if len(channels) == 4 {
		alpha = channels[3]
	}
	return New(colorful.Color{R: channels[0] / 255, G: channels[1] / 255, B: channels[2] / 255}, alpha), nil
}

func parseHex(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return Color{}, fmt.Errorf("malformed hex color")
	}

	digits := s[1:]
	alpha := 1.0
	switch len(digits) {
	case 4:
		v, _ := strconv.ParseUint(digits[3:], 16, 8)
		alpha = roundAlpha(float64(v*17) / 255)
		digits = digits[:3]
	case 8:
		v, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = roundAlpha(float64(v) / 255)
		digits = digits[:6]
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, err
	}
	return New(c, alpha), nil
}

func parseFunctional(s string) (Color, error) {
	m := functionalPattern.FindStringSubmatch(s)
	name, body := m[1], m[2]

	parts := strings.Split(body, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("%s() expects 3 or 4 components, got %d", name, len(parts))
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := parseAlpha(parts[3])
		if err != nil {
			return Color{}, err
		}
		alpha = a
	}

	if strings.HasPrefix(name, "rgb") {
		var ch [3]float64
		for i := 0; i < 3; i++ {
			v, err := parseRGBChannel(parts[i])
			if err != nil {
				return Color{}, err
			}
			ch[i] = v
		}
		return New(colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha), nil
	}

	hue, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hue %q", parts[0])
	}
	sat, err := parsePercent(parts[1])
	if err != nil {
		return Color{}, err
	}
	light, err := parsePercent(parts[2])
	if err != nil {
		return Color{}, err
	}
	return New(colorful.Hsl(normalizeHue(hue), sat, light), alpha), nil
}

// parseRGBChannel returns the channel in [0, 1]; both 0..255 numbers and percentages are accepted.
func parseRGBChannel(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid channel %q", s)
	}
	return v / 255, nil
}

func parsePercent(s string) (float64, error) {
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("expected percentage, got %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", s)
	}
	return clamp01(v / 100), nil
}

func parseAlpha(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid alpha %q", s)
	}
	return clamp01(v), nil
}

// roundAlpha keeps two decimals, the precision an 8-bit alpha carries in CSS output.
func roundAlpha(a float64) float64 {
	return math.Round(a*100) / 100
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func formatChannels(channels []float64) string {
	parts := make([]string, len(channels))
	for i, ch := range channels {
		parts[i] = strconv.FormatFloat(ch, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
