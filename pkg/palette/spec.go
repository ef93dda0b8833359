package palette

// SpecKind discriminates the two kinds of palette spec.
type SpecKind int

const (
	// SpecPrimary expands a seed colour into a ramp.
	SpecPrimary SpecKind = iota + 1
	// SpecSingle passes a literal colour through unchanged.
	SpecSingle
)

func (k SpecKind) String() string {
	switch k {
	case SpecPrimary:
		return "primary"
	case SpecSingle:
		return "single"
	default:
		return "unknown"
	}
}

// Spec describes one palette to build. Construct it with Primary or Single.
type Spec struct {
	Name  string
	Kind  SpecKind
	Value string
	Type  GenerationType
}

// Primary returns a spec that expands seed into a shades ramp.
func Primary(name, seed string) Spec {
	return Spec{Name: name, Kind: SpecPrimary, Value: seed, Type: DefaultType}
}

// Single returns a spec whose value is used verbatim.
func Single(name, value string) Spec {
	return Spec{Name: name, Kind: SpecSingle, Value: value}
}

// WithType returns a copy of s using the given generation type.
func (s Spec) WithType(t GenerationType) Spec {
	s.Type = t
	return s
}

// Source is an input to CreatePalettes: a Spec to build or a NamedPalette
// fragment to merge as-is.
type Source interface {
	source()
}

func (Spec) source()         {}
func (NamedPalette) source() {}
