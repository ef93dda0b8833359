package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	"github.com/alexisbeaulieu97/shades/pkg/palette"
	"github.com/alexisbeaulieu97/shades/pkg/theme"
)

// paletteFlags are the generation flags shared by generate and preview.
type paletteFlags struct {
	name   string
	color  string
	kind   string
	system string
	format string
}

type resolvedPaletteFlags struct {
	kind   palette.GenerationType
	system palette.System
	format color.Format
}

func (f paletteFlags) resolve() (resolvedPaletteFlags, error) {
	var out resolvedPaletteFlags

	if strings.TrimSpace(f.color) == "" {
		return out, fmt.Errorf("a seed color is required (--color)")
	}
	if strings.TrimSpace(f.name) == "" {
		return out, fmt.Errorf("palette name cannot be empty")
	}

	if f.kind != "" {
		out.kind = palette.GenerationType(strings.ToLower(f.kind))
		if !out.kind.Valid() {
			return out, fmt.Errorf("unknown palette type %q (want %s or %s)", f.kind, palette.TypeShades, palette.TypeAlpha)
		}
	}

	if f.system != "" {
		system, ok := palette.ParseSystem(f.system)
		if !ok {
			return out, fmt.Errorf("unknown color system %q (want one of %s)", f.system, joinNames(palette.Systems()))
		}
		out.system = system
	}

	format, err := resolveFormat(f.format)
	if err != nil {
		return out, err
	}
	out.format = format

	return out, nil
}

func resolveFormat(s string) (color.Format, error) {
	if s == "" {
		return "", nil
	}
	format, ok := color.ParseFormat(s)
	if !ok {
		return "", fmt.Errorf("unknown color format %q (want one of %s)", s, joinNames(color.Formats()))
	}
	return format, nil
}

func resolveMode(s string) (theme.Mode, error) {
	if s == "" {
		return "", nil
	}
	mode, ok := theme.ParseMode(s)
	if !ok {
		return "", fmt.Errorf("unknown output %q (want one of %s)", s, joinNames(theme.Modes()))
	}
	return mode, nil
}

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}
	if path == "-" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
