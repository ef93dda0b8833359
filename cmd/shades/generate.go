package main

import (
	"github.com/spf13/cobra"

	apppalette "github.com/alexisbeaulieu97/shades/internal/app/palette"
)

func newGenerateCmd(root *rootFlags) *cobra.Command {
	pf := &paletteFlags{}
	of := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one palette from a seed color",
		Example: `  shades generate --name red --color "#f87171"
  shades generate --name brand --color "rgb(96,165,250)" --system chakra --as css-vars
  shades generate --name overlay --color "#000000" --type alpha --format rgba`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, pf, of)
		},
	}

	cmd.Flags().StringVarP(&pf.name, "name", "n", "primary", "Palette name")
	cmd.Flags().StringVarP(&pf.color, "color", "c", "", "Seed color (hex, rgb, rgba, hsl, hsla or a CSS name)")
	cmd.Flags().StringVarP(&pf.kind, "type", "t", "", "Palette type: shades or alpha")
	cmd.Flags().StringVarP(&pf.system, "system", "s", "", "Step system: tailwind, chakra or antDesign")
	cmd.Flags().StringVarP(&pf.format, "format", "f", "", "Output color format (defaults to the seed's format)")
	of.register(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, pf *paletteFlags, of *outputFlags) error {
	resolved, err := pf.resolve()
	if err != nil {
		return newCommandError("generate", "validating flags", err, "Run 'shades generate --help' for usage.")
	}
	mode, err := resolveMode(of.as)
	if err != nil {
		return newCommandError("generate", "validating flags", err, "Run 'shades generate --help' for usage.")
	}

	svc, err := newService(cmd, root)
	if err != nil {
		return err
	}

	outcome, err := svc.Generate(cmd.Context(), apppalette.GenerateRequest{
		Name:   pf.name,
		Color:  pf.color,
		Type:   resolved.kind,
		System: resolved.system,
		Format: resolved.format,
		Mode:   mode,
	})
	if err != nil {
		return newCommandError("generate", "building palette "+pf.name, err, suggestionFor(err))
	}

	return writeTheme(cmd, outcome.Theme, *of)
}
