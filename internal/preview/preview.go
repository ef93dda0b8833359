// Package preview draws palettes as terminal swatches.
package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shades/internal/termcolor"
	"github.com/alexisbeaulieu97/shades/pkg/color"
	"github.com/alexisbeaulieu97/shades/pkg/palette"
)

const defaultSwatchWidth = 6

// contrastThreshold is the luminance above which black text reads better than white.
const contrastThreshold = 0.179

// Options controls rendering.
type Options struct {
	// Color draws filled swatches. Without it each colour is listed as text.
	Color bool
	// SwatchWidth is the width of one swatch in cells.
	SwatchWidth int
}

// OptionsFor enables colour when w is a terminal and NO_COLOR is unset.
func OptionsFor(w io.Writer) Options {
	return Options{Color: termcolor.Enabled(w)}
}

// Render writes p to w.
func Render(w io.Writer, p palette.NamedPalette, opts Options) error {
	var out string
	if opts.Color {
		out = renderSwatches(lipgloss.NewRenderer(w), p, opts)
	} else {
		out = renderPlain(p)
	}
	_, err := io.WriteString(w, out)
	return err
}

// RenderRamp writes a single ramp under name.
func RenderRamp(w io.Writer, name string, ramp palette.ShadePalette, opts Options) error {
	var p palette.NamedPalette
	p.Set(name, palette.ShadesValue(ramp))
	return Render(w, p, opts)
}

func renderPlain(p palette.NamedPalette) string {
	var b strings.Builder
	for _, entry := range p.Entries() {
		shades, ok := entry.Value.Shades()
		if !ok {
			single, _ := entry.Value.Single()
			fmt.Fprintf(&b, "%s  %s\n", entry.Name, single)
			continue
		}
		fmt.Fprintln(&b, entry.Name)
		for _, shade := range shades {
			fmt.Fprintf(&b, "  %-5d %s\n", shade.Step, shade.Value)
		}
	}
	return b.String()
}

func renderSwatches(r *lipgloss.Renderer, p palette.NamedPalette, opts Options) string {
	width := opts.SwatchWidth
	if width <= 0 {
		width = defaultSwatchWidth
	}

	nameWidth := 0
	for _, name := range p.Names() {
		nameWidth = max(nameWidth, lipgloss.Width(name))
	}
	nameStyle := r.NewStyle().Bold(true).Width(nameWidth + 2)

	var rows []string
	for _, entry := range p.Entries() {
		cells := []string{nameStyle.Render(entry.Name)}
		if shades, ok := entry.Value.Shades(); ok {
			for _, shade := range shades {
				cells = append(cells, swatch(r, shade.Value, strconv.Itoa(int(shade.Step)), width))
			}
		} else {
			single, _ := entry.Value.Single()
			cells = append(cells, swatch(r, single, "", width), " "+single)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if len(rows) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func swatch(r *lipgloss.Renderer, value, label string, width int) string {
	style := r.NewStyle().Width(width).Align(lipgloss.Center)

	c, err := color.Parse(value)
	if err != nil {
		return style.Render("?")
	}

	fg := lipgloss.Color("#ffffff")
	if c.Luminance() > contrastThreshold {
		fg = lipgloss.Color("#000000")
	}
	// Terminals have no alpha; swatches show the opaque colour.
	return style.Background(lipgloss.Color(c.WithAlpha(1).Hex())).Foreground(fg).Render(label)
}
