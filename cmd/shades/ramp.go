package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apppalette "github.com/alexisbeaulieu97/shades/internal/app/palette"
	"github.com/alexisbeaulieu97/shades/internal/preview"
	"github.com/alexisbeaulieu97/shades/pkg/palette"
)

type rampOptions struct {
	color    string
	channels []float64
	steps    []int
	format   string
	yaml     bool
	swatches bool
}

func newRampCmd(root *rootFlags) *cobra.Command {
	opts := &rampOptions{}

	cmd := &cobra.Command{
		Use:   "ramp",
		Short: "Generate an 11-step ramp from a base color",
		Example: `  shades ramp --color "#ff0000"
  shades ramp --rgb 255,0,0 --steps 100,500,900 --format hsl
  shades ramp --color tomato --swatches`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRamp(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "Base color")
	cmd.Flags().Float64SliceVar(&opts.channels, "rgb", nil, "Base color as r,g,b[,alpha] channels")
	cmd.Flags().IntSliceVar(&opts.steps, "steps", nil, "Steps to keep (default all of 50..950)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: hex, rgb, hsl, name or css")
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "Encode as YAML instead of JSON")
	cmd.Flags().BoolVar(&opts.swatches, "swatches", false, "Draw the ramp instead of encoding it")
	cmd.MarkFlagsMutuallyExclusive("color", "rgb")

	return cmd
}

func runRamp(cmd *cobra.Command, root *rootFlags, opts *rampOptions) error {
	var input palette.ColorInput
	switch {
	case len(opts.channels) > 0:
		input = palette.Channels(opts.channels...)
	case opts.color != "":
		input = palette.Text(opts.color)
	default:
		return newCommandError("ramp", "validating flags", errors.New("a base color is required"), "Pass --color or --rgb.")
	}

	format, err := resolveFormat(opts.format)
	if err != nil {
		return newCommandError("ramp", "validating flags", err, "Run 'shades ramp --help' for usage.")
	}

	steps := make([]palette.Step, len(opts.steps))
	for i, s := range opts.steps {
		steps[i] = palette.Step(s)
	}

	svc, err := newService(cmd, root)
	if err != nil {
		return err
	}

	ramp, err := svc.Ramp(cmd.Context(), apppalette.RampRequest{Color: input, Steps: steps, Format: format})
	if err != nil {
		return newCommandError("ramp", "generating ramp", err, suggestionFor(err))
	}

	if opts.swatches {
		return preview.RenderRamp(cmd.OutOrStdout(), rampLabel(opts), ramp, preview.OptionsFor(cmd.OutOrStdout()))
	}

	data, err := encodeObject(ramp, opts.yaml)
	if err != nil {
		return newCommandError("ramp", "encoding ramp", err, "This is a bug; please report it.")
	}
	return writeOutput(cmd, data, "")
}

func rampLabel(opts *rampOptions) string {
	if opts.color != "" {
		return opts.color
	}
	return fmt.Sprint(opts.channels)
}
