package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shades/pkg/color"
	"github.com/alexisbeaulieu97/shades/pkg/palette"
	"github.com/alexisbeaulieu97/shades/pkg/theme"
)

func newSystemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "List step systems, color formats and outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSystems(cmd)
		},
	}

	return cmd
}

func runSystems(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "SYSTEM\tSTEPS")

	for _, system := range palette.Systems() {
		steps, err := system.Steps()
		if err != nil {
			return err
		}
		keys := make([]string, len(steps))
		for i, step := range steps {
			keys[i] = strconv.Itoa(int(step))
		}
		marker := ""
		if system == palette.DefaultSystem {
			marker = " (default)"
		}
		fmt.Fprintf(writer, "%s%s\t%s\n", system, marker, strings.Join(keys, " "))
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nFormats: %s\n", joinNames(color.Formats()))
	fmt.Fprintf(cmd.OutOrStdout(), "Outputs: %s\n", joinNames(theme.Modes()))
	fmt.Fprintf(cmd.OutOrStdout(), "Types:   %s, %s\n", palette.TypeShades, palette.TypeAlpha)
	return nil
}
