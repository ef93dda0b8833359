package theme

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/shades/pkg/palette"
)

// SwatchSize is the edge length of one SVG swatch.
const SwatchSize = 100

// ToSVG draws every colour of p as a SwatchSize square, left to right in
// palette then step order. A single value draws one square.
func ToSVG(p palette.NamedPalette) string {
	width := SwatchSize * p.StepCount()

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" fill="none" xmlns="http://www.w3.org/2000/svg">`+"\n",
		width, SwatchSize, width, SwatchSize)

	x := 0
	rect := func(fill string) {
		fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s" x="%d" y="0"/>`+"\n", SwatchSize, SwatchSize, escapeAttr(fill), x)
		x += SwatchSize
	}

	for _, entry := range p.Entries() {
		if shades, ok := entry.Value.Shades(); ok {
			for _, shade := range shades {
				rect(shade.Value)
			}
			continue
		}
		single, _ := entry.Value.Single()
		rect(single)
	}

	b.WriteString("</svg>")
	return b.String()
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;", `>`, "&gt;")

// escapeAttr keeps pass-through single values from breaking the document.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
