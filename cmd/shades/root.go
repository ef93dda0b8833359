package main

import (
	"github.com/spf13/cobra"

	apppalette "github.com/alexisbeaulieu97/shades/internal/app/palette"
	"github.com/alexisbeaulieu97/shades/internal/logger"
)

type rootFlags struct {
	verbose bool
	logJSON bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "shades",
		Short:         "Shades generates color palettes for design systems",
		Long:          "Shades expands seed colors into Tailwind, Chakra or Ant Design style ramps and renders them as objects, CSS or SCSS variables, or SVG swatches.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON lines")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newRampCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newSystemsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newService builds the palette service with a logger on the command's stderr.
func newService(cmd *cobra.Command, flags *rootFlags) (*apppalette.Service, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !flags.logJSON,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "This is a bug; please report it.")
	}

	return apppalette.NewService(log.With("command", cmd.Name())), nil
}
