package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	apppalette "github.com/alexisbeaulieu97/shades/internal/app/palette"
	"github.com/alexisbeaulieu97/shades/internal/config"
	"github.com/alexisbeaulieu97/shades/pkg/diff"
	"github.com/alexisbeaulieu97/shades/pkg/theme"
)

type buildOptions struct {
	configPath string
	summary    bool
	check      bool
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := &buildOptions{}
	of := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build every palette declared in a palette document",
		Example: `  shades build -c shades.yaml
  shades build -c shades.yaml --as scss-vars -o _colors.scss
  shades build -c shades.yaml --as css-vars -o colors.css --check
  cat shades.yaml | shades build -c -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, opts, of)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the palette document, or - for stdin")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a one-line summary to stderr")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail with a diff when --out is missing or stale instead of writing it")
	of.register(cmd)

	return cmd
}

func runBuild(cmd *cobra.Command, root *rootFlags, opts *buildOptions, of *outputFlags) error {
	if opts.check && (of.outPath == "" || of.outPath == "-") {
		return newCommandError("build", "validating flags", errors.New("--check needs an --out file to compare against"), "Pass the generated file with --out.")
	}
	if err := validateConfigPath(opts.configPath); err != nil {
		return newCommandError("build", "validating config path", err, "Pass an existing palette document with --config.")
	}
	mode, err := resolveMode(of.as)
	if err != nil {
		return newCommandError("build", "validating flags", err, "Run 'shades build --help' for usage.")
	}

	req := apppalette.BuildRequest{ConfigPath: opts.configPath, ModeOverride: mode}
	if opts.configPath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return newCommandError("build", "reading stdin", err, "Pipe a palette document into the command.")
		}
		doc, err := config.Parse("stdin", data)
		if err != nil {
			return newCommandError("build", "loading palette document", err, suggestionFor(err))
		}
		req.Document = doc
	}

	svc, err := newService(cmd, root)
	if err != nil {
		return err
	}

	outcome, err := svc.Build(cmd.Context(), req)
	if err != nil {
		return newCommandError("build", "building "+opts.configPath, err, suggestionFor(err))
	}

	if opts.check {
		if err := checkOutput(cmd, outcome.Theme, *of); err != nil {
			return err
		}
	} else if err := writeTheme(cmd, outcome.Theme, *of); err != nil {
		return err
	}

	if opts.summary {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s in %s\n", outcome.Summary, outcome.Duration.Round(time.Microsecond))
	}
	return nil
}

// checkOutput compares the rendered theme with the existing --out file and
// prints a diff when they differ. A missing file counts as empty.
func checkOutput(cmd *cobra.Command, t theme.Theme, of outputFlags) error {
	generated, err := renderTheme(cmd, t, of)
	if err != nil {
		return err
	}

	stored, err := os.ReadFile(of.outPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return newCommandError("build", "reading "+of.outPath, err, "Check the file permissions.")
	}

	report := diff.Compare(stored, generated, of.outPath, "generated")
	if report.Empty() {
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Text)
	return newCommandError("build", "checking "+of.outPath, fmt.Errorf("output is stale (%s)", report.Summary()),
		"Re-run without --check to regenerate the file.")
}
