package palette

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/shades/internal/config"
	"github.com/alexisbeaulieu97/shades/internal/logger"
	"github.com/alexisbeaulieu97/shades/pkg/color"
	"github.com/alexisbeaulieu97/shades/pkg/palette"
	"github.com/alexisbeaulieu97/shades/pkg/theme"
)

// Re-export library types used by the CLI.
type (
	NamedPalette = palette.NamedPalette
	ShadePalette = palette.ShadePalette
)

// Service coordinates palette construction for the CLI: it loads documents,
// runs the library and reports diagnostics through the logger.
type Service struct {
	log *logger.Logger
}

// NewService constructs a palette service. A nil logger discards diagnostics.
func NewService(log *logger.Logger) *Service {
	return &Service{log: log}
}

// Outcome is the result of Build or Generate.
type Outcome struct {
	Palette     NamedPalette
	Theme       theme.Theme
	Overwritten []string
	Duration    time.Duration
	Summary     string
}

// BuildRequest configures a document build. Document wins over ConfigPath
// when both are set.
type BuildRequest struct {
	ConfigPath   string
	Document     *config.Document
	ModeOverride theme.Mode
}

// Build loads a palette document and renders it in the document's output
// mode, or ModeOverride when set.
func (s *Service) Build(ctx context.Context, req BuildRequest) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := req.Document
	if doc == nil {
		if req.ConfigPath == "" {
			return nil, fmt.Errorf("build: no document or config path given")
		}
		parsed, err := config.ParseConfig(req.ConfigPath)
		if err != nil {
			return nil, err
		}
		doc = parsed
	}

	log := s.log.WithFields(map[string]any{"document": doc.Name, "palettes": len(doc.Palettes), "fragments": len(doc.Fragments)})
	log.Debug("building palette document")

	mode := doc.Mode()
	if req.ModeOverride != "" {
		mode = req.ModeOverride
	}

	return s.run(ctx, log, doc.Sources(), doc.PaletteOptions(), mode)
}

// GenerateRequest describes a single palette given on the command line.
type GenerateRequest struct {
	Name   string
	Color  string
	Type   palette.GenerationType
	System palette.System
	Format color.Format
	Mode   theme.Mode
}

// Generate builds one palette from a seed colour.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec := palette.Primary(req.Name, req.Color)
	if req.Type != "" {
		spec = spec.WithType(req.Type)
	}

	log := s.log.WithFields(map[string]any{"palette": req.Name, "seed": req.Color})
	return s.run(ctx, log, []palette.Source{spec}, palette.Options{Format: req.Format, System: req.System}, req.Mode)
}

func (s *Service) run(ctx context.Context, log *logger.Logger, sources []palette.Source, opts palette.Options, mode theme.Mode) (*Outcome, error) {
	start := time.Now()

	var overwritten []string
	opts.OnOverwrite = func(name string) {
		overwritten = append(overwritten, name)
		log.With("palette", name).Warn("palette overwritten by a later definition")
	}

	built, err := palette.CreatePalettes(sources, opts)
	if err != nil {
		log.Error(err, "palette generation failed")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if mode == "" {
		mode = theme.ModeObject
	}
	if parsed, ok := theme.ParseMode(string(mode)); ok {
		mode = parsed
	} else {
		log.With("mode", string(mode)).Warn("unknown output mode, falling back to object")
	}

	outcome := &Outcome{
		Palette:     built,
		Theme:       theme.Create(built, mode),
		Overwritten: overwritten,
		Duration:    time.Since(start),
	}
	outcome.Summary = summarize(built)

	log.WithFields(map[string]any{
		"entries":  built.Len(),
		"colors":   built.StepCount(),
		"mode":     string(outcome.Theme.Mode),
		"duration": outcome.Duration.String(),
	}).Info("palettes generated")

	return outcome, nil
}

// RampRequest configures the standalone shade generator.
type RampRequest struct {
	Color  palette.ColorInput
	Steps  []palette.Step
	Format color.Format
}

// Ramp runs palette.GenerateShadesForBaseColor.
func (s *Service) Ramp(ctx context.Context, req RampRequest) (ShadePalette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ramp, err := palette.GenerateShadesForBaseColor(req.Color, req.Steps, req.Format)
	if err != nil {
		s.log.Error(err, "ramp generation failed")
		return nil, err
	}

	s.log.WithFields(map[string]any{"steps": len(ramp), "format": string(req.Format)}).Debug("ramp generated")
	return ramp, nil
}

func summarize(p NamedPalette) string {
	switch p.Len() {
	case 0:
		return "no palettes generated"
	case 1:
		return fmt.Sprintf("1 palette, %d colors", p.StepCount())
	default:
		return fmt.Sprintf("%d palettes, %d colors", p.Len(), p.StepCount())
	}
}
