package config

import (
	"github.com/alexisbeaulieu97/shades/pkg/color"
	"github.com/alexisbeaulieu97/shades/pkg/palette"
	"github.com/alexisbeaulieu97/shades/pkg/theme"
)

// Document is a palette document (shades.yaml).
type Document struct {
	Version     string                 `yaml:"version" validate:"required,semver"`
	Name        string                 `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Description string                 `yaml:"description,omitempty"`
	Options     Options                `yaml:"options,omitempty"`
	Output      string                 `yaml:"output,omitempty" validate:"omitempty,oneof=object css-vars scss-vars svg"`
	Palettes    []PaletteSpec          `yaml:"palettes,omitempty" validate:"omitempty,dive"`
	Fragments   []palette.NamedPalette `yaml:"fragments,omitempty"`
}

// Options holds document-wide generation settings.
type Options struct {
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=hex rgb rgba hsl hsla name css"`
	System string `yaml:"system,omitempty" validate:"omitempty,oneof=tailwind chakra antDesign"`
}

// PaletteSpec declares one palette. Exactly one of Primary and Single is set.
type PaletteSpec struct {
	Name    string `yaml:"name" validate:"required,palette_name"`
	Primary string `yaml:"primary,omitempty" validate:"required_without=Single,excluded_with=Single,color"`
	Single  string `yaml:"single,omitempty"`
	Type    string `yaml:"type,omitempty" validate:"omitempty,oneof=shades alpha"`
}

// Spec converts the declaration into a palette.Spec.
func (p PaletteSpec) Spec() palette.Spec {
	if p.Primary == "" {
		return palette.Single(p.Name, p.Single)
	}
	spec := palette.Primary(p.Name, p.Primary)
	if p.Type != "" {
		spec = spec.WithType(palette.GenerationType(p.Type))
	}
	return spec
}

// Sources lists the declared palettes followed by the fragments, ready for
// palette.CreatePalettes.
func (d *Document) Sources() []palette.Source {
	sources := make([]palette.Source, 0, len(d.Palettes)+len(d.Fragments))
	for _, p := range d.Palettes {
		sources = append(sources, p.Spec())
	}
	for _, f := range d.Fragments {
		sources = append(sources, f)
	}
	return sources
}

// PaletteOptions maps the document options onto palette.Options.
func (d *Document) PaletteOptions() palette.Options {
	return palette.Options{
		Format: color.Format(d.Options.Format),
		System: palette.System(d.Options.System),
	}
}

// Mode is the requested output mode, theme.ModeObject when unset.
func (d *Document) Mode() theme.Mode {
	if d.Output == "" {
		return theme.ModeObject
	}
	return theme.Mode(d.Output)
}
