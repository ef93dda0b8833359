// Package theme renders a palette.NamedPalette as stylesheet variables or an
// SVG swatch strip. Rendering is pure: it reads the palette in its stored
// order and never touches the values.
package theme

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/shades/pkg/palette"
)

// VarFormat selects the variable syntax emitted by CreateVariables.
type VarFormat string

const (
	VarCSS  VarFormat = "css"
	VarSCSS VarFormat = "scss"
)

// Prefix is the variable sigil: "--" for css, "$" for anything else.
func (f VarFormat) Prefix() string {
	if f == VarCSS {
		return "--"
	}
	return "$"
}

// Mode selects the output of Create.
type Mode string

const (
	ModeObject   Mode = "object"
	ModeCSSVars  Mode = "css-vars"
	ModeSCSSVars Mode = "scss-vars"
	ModeSVG      Mode = "svg"
)

// Modes lists the known modes in a stable order.
func Modes() []Mode {
	return []Mode{ModeObject, ModeCSSVars, ModeSCSSVars, ModeSVG}
}

// ParseMode resolves a mode name, case-insensitively.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes() {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, true
		}
	}
	return "", false
}

// Theme is the result of Create. Object themes carry Palette; every other
// mode carries Text.
type Theme struct {
	Mode    Mode
	Palette palette.NamedPalette
	Text    string
}

// IsText reports whether the theme was rendered to text.
func (t Theme) IsText() bool {
	return t.Mode != ModeObject
}

// Create renders p in the requested mode. Unknown modes return the palette
// unchanged, as ModeObject does.
func Create(p palette.NamedPalette, as Mode) Theme {
	switch as {
	case ModeCSSVars:
		return Theme{Mode: as, Text: CreateVariables(VarCSS, p)}
	case ModeSCSSVars:
		return Theme{Mode: as, Text: CreateVariables(VarSCSS, p)}
	case ModeSVG:
		return Theme{Mode: as, Text: ToSVG(p)}
	default:
		return Theme{Mode: ModeObject, Palette: p}
	}
}

// CreateVariables emits one newline-terminated declaration per single value
// and one per step of every ramp, e.g. "--red-500: #f87171;".
func CreateVariables(f VarFormat, p palette.NamedPalette) string {
	prefix := f.Prefix()

	var b strings.Builder
	for _, entry := range p.Entries() {
		key := prefix + entry.Name
		if shades, ok := entry.Value.Shades(); ok {
			for _, shade := range shades {
				fmt.Fprintf(&b, "%s-%d: %s;\n", key, shade.Step, shade.Value)
			}
			continue
		}
		single, _ := entry.Value.Single()
		fmt.Fprintf(&b, "%s: %s;\n", key, single)
	}
	return b.String()
}
