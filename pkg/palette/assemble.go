package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

// Options controls palette assembly. The zero value keeps the seed's own
// format and uses the tailwind schema.
type Options struct {
	// Format of the generated shades. Empty means the seed's detected format.
	Format color.Format
	// System selects the step schema. Empty means DefaultSystem.
	System System
	// OnOverwrite is called by CreatePalettes for each palette name that a
	// later source replaced.
	OnOverwrite func(name string)
}

// CreatePalette builds a one-entry NamedPalette from spec.
//
// Single specs are passed through verbatim. Primary specs are validated,
// expanded into one shade per schema step (lightest first) and each shade is
// rendered in the target format.
func CreatePalette(spec Spec, opts Options) (NamedPalette, error) {
	var out NamedPalette

	switch spec.Kind {
	case SpecSingle:
		out.Set(spec.Name, SingleValue(spec.Value))
		return out, nil
	case SpecPrimary:
	default:
		return NamedPalette{}, shadeserrors.NewColorError(shadeserrors.CodeInvalidColor, "",
			fmt.Sprintf("palette %q declares neither a primary nor a single value", spec.Name), nil)
	}

	seed, err := color.Parse(spec.Value)
	if err != nil {
		return NamedPalette{}, fmt.Errorf("palette %q: %w", spec.Name, err)
	}

	steps, err := opts.System.Steps()
	if err != nil {
		return NamedPalette{}, err
	}

	format := opts.Format
	if format == "" {
		format, err = IdentifyFormat(spec.Value)
		if err != nil {
			return NamedPalette{}, fmt.Errorf("palette %q: %w", spec.Name, err)
		}
	}

	genType := spec.Type
	if genType == "" {
		genType = DefaultType
	}

	var shades []color.Color
	switch genType {
	case TypeShades:
		shades, err = colorShades(seed, len(steps))
	case TypeAlpha:
		shades, err = alphaShades(seed, len(steps))
	default:
		return NamedPalette{}, fmt.Errorf("palette %q: unknown generation type %q", spec.Name, genType)
	}
	if err != nil {
		return NamedPalette{}, fmt.Errorf("palette %q: %w", spec.Name, err)
	}

	ramp := make(ShadePalette, len(steps))
	for i, step := range steps {
		ramp[i] = Shade{Step: step, Value: ConvertToFormat(format, shades[i])}
	}

	out.Set(spec.Name, ShadesValue(ramp))
	return out, nil
}

// CreatePalettes builds every Spec in sources and merges the results with
// the NamedPalette fragments among them. Spec-built entries are assigned
// first, in input order, then fragments in input order; a later assignment
// to the same name wins. Any failing spec fails the whole call.
func CreatePalettes(sources []Source, opts Options) (NamedPalette, error) {
	var (
		out       NamedPalette
		fragments []NamedPalette
	)

	for _, src := range sources {
		switch s := src.(type) {
		case Spec:
			built, err := CreatePalette(s, opts)
			if err != nil {
				return NamedPalette{}, err
			}
			out.Merge(built, opts.OnOverwrite)
		case NamedPalette:
			fragments = append(fragments, s)
		case *NamedPalette:
			if s != nil {
				fragments = append(fragments, *s)
			}
		}
	}

	for _, fragment := range fragments {
		out.Merge(fragment, opts.OnOverwrite)
	}

	return out, nil
}
