package main

import (
	"errors"

	"github.com/spf13/cobra"

	apppalette "github.com/alexisbeaulieu97/shades/internal/app/palette"
	"github.com/alexisbeaulieu97/shades/internal/preview"
)

type previewOptions struct {
	configPath string
	plain      bool
	width      int
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}
	pf := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw palettes as terminal swatches",
		Example: `  shades preview --color "#f87171"
  shades preview -c shades.yaml --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, opts, pf)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Palette document to preview")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "List colors as text even on a terminal")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Swatch width in cells")
	cmd.Flags().StringVarP(&pf.name, "name", "n", "primary", "Palette name")
	cmd.Flags().StringVarP(&pf.color, "color", "c", "", "Seed color")
	cmd.Flags().StringVarP(&pf.kind, "type", "t", "", "Palette type: shades or alpha")
	cmd.Flags().StringVarP(&pf.system, "system", "s", "", "Step system: tailwind, chakra or antDesign")
	cmd.Flags().StringVarP(&pf.format, "format", "f", "", "Color format")
	cmd.MarkFlagsMutuallyExclusive("config", "color")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts *previewOptions, pf *paletteFlags) error {
	if opts.configPath == "" && pf.color == "" {
		return newCommandError("preview", "validating flags", errors.New("nothing to preview"), "Pass --color or --config.")
	}

	svc, err := newService(cmd, root)
	if err != nil {
		return err
	}

	var outcome *apppalette.Outcome
	if opts.configPath != "" {
		if err := validateConfigPath(opts.configPath); err != nil {
			return newCommandError("preview", "validating config path", err, "Pass an existing palette document with --config.")
		}
		outcome, err = svc.Build(cmd.Context(), apppalette.BuildRequest{ConfigPath: opts.configPath})
	} else {
		resolved, rerr := pf.resolve()
		if rerr != nil {
			return newCommandError("preview", "validating flags", rerr, "Run 'shades preview --help' for usage.")
		}
		outcome, err = svc.Generate(cmd.Context(), apppalette.GenerateRequest{
			Name:   pf.name,
			Color:  pf.color,
			Type:   resolved.kind,
			System: resolved.system,
			Format: resolved.format,
		})
	}
	if err != nil {
		return newCommandError("preview", "building palettes", err, suggestionFor(err))
	}

	popts := preview.OptionsFor(cmd.OutOrStdout())
	popts.Color = popts.Color && !opts.plain
	popts.SwatchWidth = opts.width

	return preview.Render(cmd.OutOrStdout(), outcome.Palette, popts)
}
