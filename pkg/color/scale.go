package color

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendModel is the colour space a Scale interpolates in.
type BlendModel string

const (
	BlendRGB BlendModel = "rgb"
	BlendHSL BlendModel = "hsl"
	BlendHSV BlendModel = "hsv"
	BlendLab BlendModel = "lab"
	BlendHCL BlendModel = "hcl"
)

// DefaultBlend interpolates in Lab, which keeps hue from drifting through
// unrelated colours between stops.
const DefaultBlend = BlendLab

var blenders = map[BlendModel]func(a, b colorful.Color, t float64) colorful.Color{
	BlendRGB: colorful.Color.BlendRgb,
	BlendHSL: blendHSL,
	BlendHSV: colorful.Color.BlendHsv,
	BlendLab: colorful.Color.BlendLab,
	BlendHCL: colorful.Color.BlendHcl,
}

// ParseBlendModel resolves a blend model name, case-insensitively.
func ParseBlendModel(s string) (BlendModel, bool) {
	m := BlendModel(strings.ToLower(strings.TrimSpace(s)))
	_, ok := blenders[m]
	return m, ok
}

// Mix interpolates from c towards other by t in [0, 1] using model.
// Unknown models fall back to DefaultBlend.
func (c Color) Mix(other Color, t float64, model BlendModel) Color {
	blend, ok := blenders[model]
	if !ok {
		blend = blenders[DefaultBlend]
	}
	t = clamp01(t)
	return New(blend(c.rgb, other.rgb, t), c.alpha+(other.alpha-c.alpha)*t)
}

// Scale samples a piecewise interpolation through evenly spaced stops.
type Scale struct {
	stops []Color
	model BlendModel
}

// NewScale returns a scale over stops using DefaultBlend.
func NewScale(stops ...Color) Scale {
	return Scale{stops: append([]Color(nil), stops...), model: DefaultBlend}
}

// Mode returns a copy of the scale that blends in model.
func (s Scale) Mode(model BlendModel) Scale {
	s.model = model
	return s
}

// At samples the scale at t in [0, 1]. Stops sit at i/(len-1); sampling a stop
// position returns that stop unchanged.
func (s Scale) At(t float64) Color {
	switch len(s.stops) {
	case 0:
		return Color{}
	case 1:
		return s.stops[0]
	}

	pos := clamp01(t) * float64(len(s.stops)-1)
	i := int(math.Floor(pos))
	if i >= len(s.stops)-1 {
		return s.stops[len(s.stops)-1]
	}
	frac := pos - float64(i)
	if frac == 0 {
		return s.stops[i]
	}
	return s.stops[i].Mix(s.stops[i+1], frac, s.model)
}

// Colors returns n evenly spaced samples from the first stop to the last.
// A single sample is taken from the middle of the scale.
func (s Scale) Colors(n int) []Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Color{s.At(0.5)}
	}

	out := make([]Color, n)
	for i := range out {
		out[i] = s.At(float64(i) / float64(n-1))
	}
	return out
}

// blendHSL interpolates hue along the shorter arc. A grey stop has no hue and
// adopts the other stop's; black and white additionally adopt its saturation.
func blendHSL(a, b colorful.Color, t float64) colorful.Color {
	h1, s1, l1, grey1 := hsl(a)
	h2, s2, l2, grey2 := hsl(b)

	sat := s1 + (s2-s1)*t
	var hue float64
	switch {
	case !grey1 && !grey2:
		delta := h2 - h1
		if delta > 180 {
			delta -= 360
		} else if delta < -180 {
			delta += 360
		}
		hue = h1 + delta*t
	case !grey1:
		hue = h1
		if l2 == 0 || l2 == 1 {
			sat = s1
		}
	case !grey2:
		hue = h2
		if l1 == 0 || l1 == 1 {
			sat = s2
		}
	}

	return colorful.Hsl(normalizeHue(hue), sat, l1+(l2-l1)*t)
}

// hsl converts to HSL and reports whether the colour is achromatic.
func hsl(c colorful.Color) (h, s, l float64, grey bool) {
	c = c.Clamped()
	h, s, l = c.Hsl()
	grey = math.Max(c.R, math.Max(c.G, c.B)) == math.Min(c.R, math.Min(c.G, c.B))
	if grey {
		h, s = 0, 0
	}
	return h, s, l, grey
}
